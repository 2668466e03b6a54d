package web

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"popfly/internal/domain"
	"popfly/internal/engine"
	"popfly/internal/format"
	"popfly/internal/grid"
)

const maxPrecision = 6

// computeRequest is the POST /api/compute body. Coordinate elements may be
// grid-token strings or plain metre numbers.
type computeRequest struct {
	Start     []any  `json:"start"`
	End       []any  `json:"end"`
	Precision *int   `json:"precision"`
	Faction   string `json:"faction"`
}

// ComputeResponse mirrors the CLI's --json payload plus the resolved faction.
type ComputeResponse struct {
	Format      string     `json:"format"`
	Start       [2]float64 `json:"start"`
	End         [2]float64 `json:"end"`
	DistanceM   float64    `json:"distance_m"`
	AzimuthMils float64    `json:"azimuth_mils"`
	Faction     string     `json:"faction"`
}

func (s *Server) compute(c *gin.Context) {
	var req computeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	// Shape and type violations never reach the engine.
	if err := validateCoordinateArray("start", req.Start); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	if err := validateCoordinateArray("end", req.End); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	precision := 0
	if req.Precision != nil {
		precision = *req.Precision
		if precision < 0 || precision > maxPrecision {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": fmt.Sprintf("precision must be between 0 and %d", maxPrecision),
			})
			return
		}
	}

	system := domain.NATO
	if req.Faction != "" {
		var err error
		if system, err = domain.ParseAngularSystem(req.Faction); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
	}

	start, err := grid.NormalizePair(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("start: %v", err)})
		return
	}
	end, err := grid.NormalizePair(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("end: %v", err)})
		return
	}

	res := engine.Compute(start, end, system)
	c.JSON(http.StatusOK, ComputeResponse{
		Format:      "mgrs-digits",
		Start:       res.Start.Pair(),
		End:         res.End.Pair(),
		DistanceM:   format.Round(res.DistanceM, precision),
		AzimuthMils: format.RoundAzimuth(res.AzimuthMils),
		Faction:     system.String(),
	})
}

// validateCoordinateArray enforces arity and element types up front so the
// engine only ever sees tokens and numbers.
func validateCoordinateArray(field string, parts []any) error {
	if len(parts) != 2 {
		return fmt.Errorf("%s must be an array of exactly 2 elements, got %d", field, len(parts))
	}
	for i, p := range parts {
		switch p.(type) {
		case string, float64:
		default:
			return fmt.Errorf("%s[%d] must be a grid token string or a number", field, i)
		}
	}
	return nil
}
