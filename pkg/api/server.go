// Package api provides the REST API server for midi2strudel
package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/james-see/midi2strudel/pkg/converter"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title MIDI2Strudel API
// @version 1.0
// @description API for converting MIDI files to Strudel patterns
// @host localhost:8080
// @BasePath /api/v1

// maxUploadSize bounds the multipart body kept in memory
const maxUploadSize = 8 << 20

// NoteResponse describes one converted note
type NoteResponse struct {
	Name     string  `json:"name"`
	Pitch    int     `json:"pitch"`
	Duration float64 `json:"duration"`
}

// ConvertResponse is the body returned by the convert endpoint
type ConvertResponse struct {
	Pattern    string         `json:"pattern"`
	Mode       string         `json:"mode"`
	Tempo      float64        `json:"tempo"`
	Tempos     []float64      `json:"tempos"`
	CPM        float64        `json:"cpm"`
	SlowFactor *float64       `json:"slow_factor"`
	Notes      []NoteResponse `json:"notes"`
	Warnings   []string       `json:"warnings"`
}

// StartServer starts the API server on the specified port
func StartServer(port int, opts converter.Options) error {
	return NewRouter(opts).Run(fmt.Sprintf(":%d", port))
}

// NewRouter builds the gin engine. opts are the defaults for requests that do
// not override them.
func NewRouter(opts converter.Options) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = maxUploadSize

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	h := &handler{opts: opts}

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/modes", listModes)
		v1.POST("/convert", h.convert)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "midi2strudel",
	})
}

// listModes godoc
// @Summary List output modes
// @Description Returns the supported Strudel output modes
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /api/v1/modes [get]
func listModes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"modes": converter.Modes(),
	})
}

type handler struct {
	opts converter.Options
}

// convert godoc
// @Summary Convert MIDI to Strudel
// @Description Upload a MIDI file and receive the Strudel pattern
// @Tags convert
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "MIDI file to convert"
// @Param mode query string false "Output mode: basic or mini"
// @Param default_tempo query number false "Tempo in BPM when the file has none (default: 120)"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/convert [post]
func (h *handler) convert(c *gin.Context) {
	opts := h.opts
	if m := c.Query("mode"); m != "" {
		mode, err := converter.ParseMode(m)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		opts.Mode = mode
	}
	if t := c.Query("default_tempo"); t != "" {
		bpm, err := strconv.ParseFloat(t, 64)
		if err != nil || bpm <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "default_tempo must be a positive number"})
			return
		}
		opts.DefaultTempo = bpm
	}

	// Get uploaded file
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer func() { _ = file.Close() }()

	// Read file content
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read file"})
		return
	}

	if converter.DetectFormatFromContent(data) != converter.FormatMIDI {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("%v: %s", converter.ErrUnsupportedFormat, header.Filename),
		})
		return
	}

	res, err := converter.New(opts).Convert(data)
	if err != nil {
		logrus.WithField("file", header.Filename).Warnf("conversion failed: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newConvertResponse(res))
}

func newConvertResponse(res *converter.Result) ConvertResponse {
	notes := make([]NoteResponse, len(res.Notes))
	for i, n := range res.Notes {
		notes[i] = NoteResponse{
			Name:     n.Name(),
			Pitch:    n.Pitch,
			Duration: res.Durations[i],
		}
	}
	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	tempos := res.Tempos
	if tempos == nil {
		tempos = []float64{}
	}
	return ConvertResponse{
		Pattern:    res.Pattern,
		Mode:       string(res.Mode),
		Tempo:      res.Tempo,
		Tempos:     tempos,
		CPM:        res.CyclesPerMinute,
		SlowFactor: res.SlowFactor,
		Notes:      notes,
		Warnings:   warnings,
	}
}
