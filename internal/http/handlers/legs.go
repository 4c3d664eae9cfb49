package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"picusrc-backend/internal/domain"
	"picusrc-backend/internal/services"
	"picusrc-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// LegBreakdown is a costed leg plus its overhead-adjusted profit figures.
type LegBreakdown struct {
	Position int        `json:"position"`
	Leg      domain.Leg `json:"leg"`

	NetProfit   float64 `json:"netProfit"`
	ProfitRatio float64 `json:"profitRatio"`

	Overhead            float64 `json:"overhead"`
	ProfitAfterOverhead float64 `json:"profitAfterOverhead"`
}

func breakdown(pos int, leg domain.Leg, params domain.OperatingParams) LegBreakdown {
	overhead := leg.TotalRevenue * params.OverheadRate
	return LegBreakdown{
		Position:            pos,
		Leg:                 leg,
		NetProfit:           utils.Round2(leg.NetProfit()),
		ProfitRatio:         leg.ProfitRatio(),
		Overhead:            utils.Round2(overhead),
		ProfitAfterOverhead: utils.Round2(leg.NetProfit() - overhead),
	}
}

func parsePos(c *gin.Context) (int, bool) {
	pos, err := strconv.Atoi(c.Param("pos"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "position must be an integer", err)
		return 0, false
	}
	return pos, true
}

// GET /api/legs?type=IMPO&origin=...&destination=...&rank=profit
func ListLegs(c *gin.Context) {
	svc := catalogService(c)
	legs, err := svc.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	if t := strings.TrimSpace(c.Query("type")); t != "" {
		legType := domain.LegType(strings.ToUpper(t))
		if !legType.Valid() {
			RespondError(c, http.StatusBadRequest, "unknown leg type: "+t, nil)
			return
		}
		origin := strings.TrimSpace(c.Query("origin"))
		destination := strings.TrimSpace(c.Query("destination"))
		if origin != "" && destination != "" {
			legs = services.ByRoute(legs, legType, origin, destination)
		} else {
			legs = services.ByType(legs, legType)
			if origin != "" {
				legs = filterBy(legs, func(l domain.Leg) bool { return l.Origin == origin })
			}
			if destination != "" {
				legs = filterBy(legs, func(l domain.Leg) bool { return l.Destination == destination })
			}
		}
	}

	if c.Query("rank") == "profit" {
		legs = services.RankByProfitRatio(legs)
	}

	c.JSON(http.StatusOK, gin.H{"legs": legs, "count": len(legs)})
}

func filterBy(legs []domain.Leg, keep func(domain.Leg) bool) []domain.Leg {
	out := legs[:0:0]
	for _, l := range legs {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

// GET /api/legs/:pos
func GetLeg(c *gin.Context) {
	pos, ok := parsePos(c)
	if !ok {
		return
	}
	svc := catalogService(c)
	leg, err := svc.Get(pos)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	params, err := svc.Params.Load()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown(pos, leg, params))
}

// POST /api/legs
func CreateLeg(c *gin.Context) {
	var in domain.LegInput
	if !BindJSONOrError(c, &in) {
		return
	}
	leg, err := catalogService(c).Add(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"leg": leg})
}

// PUT /api/legs/:pos
func UpdateLeg(c *gin.Context) {
	pos, ok := parsePos(c)
	if !ok {
		return
	}
	var in domain.LegInput
	if !BindJSONOrError(c, &in) {
		return
	}
	leg, err := catalogService(c).UpdateAt(pos, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"leg": leg})
}

// DELETE /api/legs/:pos
func DeleteLeg(c *gin.Context) {
	pos, ok := parsePos(c)
	if !ok {
		return
	}
	if err := catalogService(c).DeleteAt([]int{pos}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "leg deleted", "position": pos})
}
