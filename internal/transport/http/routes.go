// Package http re-themes the teacher's Gin transport layer
// (session/daily-puzzle API) onto the generate/rate/batch/stats surface
// of spec.md §6, keeping its route-grouping and binding:"required"
// request-struct conventions.
package http

import (
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/andrew867/sudokugen/internal/batch"
	"github.com/andrew867/sudokugen/internal/core"
	"github.com/andrew867/sudokugen/internal/generator"
	"github.com/andrew867/sudokugen/internal/rating"
	"github.com/andrew867/sudokugen/internal/refiner"
	"github.com/andrew867/sudokugen/internal/stats"
	"github.com/andrew867/sudokugen/pkg/constants"
)

// Server bundles the core collaborators the HTTP handlers close over.
// It is re-themed from the teacher's package-level `cfg *config.Config`
// global into an explicit receiver, since this surface has no session
// state to keep alongside it.
type Server struct {
	log   zerolog.Logger
	stats *stats.Statistics
}

// NewServer returns a Server with its own Statistics aggregator.
func NewServer(log zerolog.Logger) *Server {
	return &Server{log: log, stats: stats.New()}
}

// RegisterRoutes wires every endpoint onto r (spec.md §6's programmatic
// surface, exposed over HTTP), mirroring the teacher's RegisterRoutes
// grouping shape.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.healthHandler)

	api := r.Group("/api")
	{
		api.POST("/generate", s.generateHandler)
		api.POST("/rate", s.rateHandler)
		api.POST("/batch", s.batchHandler)
		api.GET("/stats/:class", s.statsHandler)
	}
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

// GenerateRequest is the body for POST /api/generate.
type GenerateRequest struct {
	Size            int    `json:"size" binding:"required"`
	BoxRows         int    `json:"box_rows" binding:"required"`
	BoxCols         int    `json:"box_cols" binding:"required"`
	Difficulty      string `json:"difficulty" binding:"required"`
	Variant         string `json:"variant"`
	Seed            *int64 `json:"seed"`
	UseRefinement   bool   `json:"use_refinement"`
	IncludeSolution bool   `json:"include_solution"`
}

func (s *Server) generateHandler(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	class, ok := core.ParseClass(req.Difficulty)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_difficulty"})
		return
	}
	variant := core.ParseVariant(req.Variant)

	var gen *generator.Generator
	if req.Seed != nil {
		gen = generator.NewWithSeed(*req.Seed)
	} else {
		gen = generator.New()
	}

	gp, err := gen.Generate(class, variant, req.Size, req.BoxRows, req.BoxCols, req.UseRefinement)
	if err != nil {
		s.log.Error().Err(err).Msg("generation failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if req.UseRefinement {
		rf := refiner.New()
		rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		result := rf.RefineToDifficulty(gp.Puzzle, gp.Solution, class, rng, false)
		gp.Puzzle = result.Puzzle
		gp.Rating = result.Rating
		gp.RefinementIterations = result.Iterations
	}

	s.stats.Append(stats.Record{
		TargetClass:          class,
		ActualClass:          gp.Rating.EstimatedClass,
		IterationCount:       gp.Rating.IterationCount,
		CompositeScore:       gp.Rating.CompositeScore,
		ClueCount:            gp.Rating.ClueCount,
		Matched:              gp.Rating.IsInTargetRange,
		RefinementIterations: gp.RefinementIterations,
		GuessCount:           gp.Rating.GuessCount,
		MaxBacktrackDepth:    gp.Rating.MaxBacktrackDepth,
	})

	resp := gin.H{
		"id":               gp.ID,
		"puzzle":           gp.Puzzle.String(),
		"difficulty":       gp.Difficulty.String(),
		"variant":          gp.Variant.String(),
		"rating":           gp.Rating,
		"symmetry":         gp.Symmetry,
		"generated_at":     gp.GeneratedAt.Format(time.RFC3339),
		"solver_algorithm": gp.SolverAlgorithm,
	}
	if req.IncludeSolution {
		resp["solution"] = gp.Solution.String()
	}
	c.JSON(http.StatusOK, resp)
}

// RateRequest is the body for POST /api/rate.
type RateRequest struct {
	Puzzle  string `json:"puzzle" binding:"required"`
	Size    int    `json:"size" binding:"required"`
	BoxRows int    `json:"box_rows" binding:"required"`
	BoxCols int    `json:"box_cols" binding:"required"`
}

func (s *Server) rateHandler(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b, offenses, err := core.ParseBoard(req.Size, req.BoxRows, req.BoxCols, req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if offenses != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": offenses.Error()})
		return
	}

	r := rating.NewRater()
	c.JSON(http.StatusOK, r.Rate(b))
}

// BatchRequest is the body for POST /api/batch.
type BatchRequest struct {
	Difficulties string `json:"difficulties" binding:"required"`
	Count        int    `json:"count" binding:"required"`
}

func (s *Server) batchHandler(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	classes := batch.ParseDifficulties(req.Difficulties)
	plan := batch.Distribute(classes, req.Count)

	names := make([]string, len(plan))
	for i, cl := range plan {
		names[i] = cl.String()
	}
	c.JSON(http.StatusOK, gin.H{"plan": names})
}

func (s *Server) statsHandler(c *gin.Context) {
	class, ok := core.ParseClass(c.Param("class"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_difficulty"})
		return
	}
	c.JSON(http.StatusOK, s.stats.SummaryFor(class))
}
