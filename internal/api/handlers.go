package api

import (
	"context"
	"log"
	"net/http"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"

	"audioscribe/internal/audio"
	"audioscribe/internal/model"
	"audioscribe/internal/storage"
	"audioscribe/internal/utils"
)

// Processor is the pipeline surface the handlers need.
type Processor interface {
	Process(ctx context.Context, job model.Job) model.Outcome
}

// Handlers wires the HTTP surface to the pipeline and the recording store.
type Handlers struct {
	processor Processor
	store     *storage.Store
	reportDir string
}

func NewHandlers(processor Processor, store *storage.Store, reportDir string) *Handlers {
	return &Handlers{
		processor: processor,
		store:     store,
		reportDir: reportDir,
	}
}

func RegisterRoutes(r *gin.Engine, h *Handlers) {
	// Single-page form
	r.GET("/", h.indexPage)

	// Health check
	r.GET("/health", h.healthCheck)

	// Report download
	r.GET("/reports/:name", h.downloadReport)

	// API v1
	v1 := r.Group("/api/v1")
	{
		v1.POST("/process", h.processAudio)
		v1.GET("/recordings", h.listRecordings)
		v1.GET("/recordings/:recording_id", h.getRecording)
		v1.GET("/recordings/:recording_id/status", h.getRecordingStatus)
	}
}

// healthCheck returns server health status
func (h *Handlers) healthCheck(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":  "ok",
		"service": "audioscribe",
	})
}

// processAudio handles the form submission: one audio file, one translate
// toggle, three outputs. The whole pipeline runs on this request before the
// response is written.
func (h *Handlers) processAudio(c *gin.Context) {
	translate := true
	if v, err := strconv.ParseBool(c.DefaultPostForm("translate", "true")); err == nil {
		translate = v
	}

	file, err := c.FormFile("file")
	if err != nil {
		// No file supplied: the pipeline's entry guard produces the prompt
		// message without touching any stage.
		outcome := h.processor.Process(c.Request.Context(), model.Job{Translate: translate})
		utils.Success(c, outcomeResponse(outcome, ""))
		return
	}

	rec, err := h.store.SaveAudio(file)
	if err != nil {
		log.Printf("[API] Failed to save upload: %v", err)
		utils.Error(c, http.StatusInternalServerError, "failed to save uploaded file")
		return
	}

	if dur, err := audio.ProbeDuration(rec.Path); err == nil {
		h.store.UpdateDuration(rec.ID, dur)
	}

	h.store.UpdateStatus(rec.ID, "processing")

	outcome := h.processor.Process(c.Request.Context(), model.Job{
		RecordingID: rec.ID,
		AudioPath:   rec.Path,
		DisplayName: file.Filename,
		Translate:   translate,
	})

	if outcome.Failed {
		h.store.UpdateError(rec.ID, outcome.Transcript)
	} else {
		h.store.UpdateResult(rec.ID, outcome.Transcript, outcome.Translation, outcome.ReportPath)
	}

	utils.Success(c, outcomeResponse(outcome, rec.ID))
}

func outcomeResponse(outcome model.Outcome, recordingID string) gin.H {
	resp := gin.H{
		"chinese_text": outcome.Transcript,
		"english_text": outcome.Translation,
	}
	if recordingID != "" {
		resp["recording_id"] = recordingID
	}
	if outcome.ReportPath != "" {
		resp["report"] = filepath.Base(outcome.ReportPath)
	}
	return resp
}

// reportName matches the only filenames the generator produces.
var reportName = regexp.MustCompile(`^transcript_\d+\.md$`)

// downloadReport serves a generated report file
func (h *Handlers) downloadReport(c *gin.Context) {
	name := c.Param("name")
	if !reportName.MatchString(name) {
		utils.Error(c, http.StatusBadRequest, "invalid report name")
		return
	}
	c.FileAttachment(filepath.Join(h.reportDir, name), name)
}

// listRecordings handles GET /api/v1/recordings
func (h *Handlers) listRecordings(c *gin.Context) {
	recs := h.store.List()
	items := make([]gin.H, 0, len(recs))
	for _, rec := range recs {
		items = append(items, recordingSummary(&rec))
	}
	utils.Success(c, gin.H{
		"items": items,
		"count": len(items),
	})
}

// getRecording handles GET /api/v1/recordings/:recording_id
func (h *Handlers) getRecording(c *gin.Context) {
	rec, ok := h.store.Get(c.Param("recording_id"))
	if !ok {
		utils.Error(c, http.StatusNotFound, "recording not found")
		return
	}

	resp := recordingSummary(rec)
	if rec.Transcript != "" {
		resp["transcript"] = rec.Transcript
	}
	if rec.Translation != "" {
		resp["translation"] = rec.Translation
	}
	if rec.ReportPath != "" {
		resp["report"] = filepath.Base(rec.ReportPath)
	}
	if rec.Error != "" {
		resp["error_message"] = rec.Error
	}
	utils.Success(c, resp)
}

// getRecordingStatus handles GET /api/v1/recordings/:recording_id/status
func (h *Handlers) getRecordingStatus(c *gin.Context) {
	rec, ok := h.store.Get(c.Param("recording_id"))
	if !ok {
		utils.Error(c, http.StatusNotFound, "recording not found")
		return
	}
	utils.Success(c, gin.H{
		"id":     rec.ID,
		"status": rec.Status,
	})
}

func recordingSummary(rec *storage.Recording) gin.H {
	item := gin.H{
		"id":         rec.ID,
		"filename":   rec.DisplayName,
		"status":     rec.Status,
		"size_bytes": rec.Size,
		"created_at": rec.CreatedAt,
	}
	if rec.Duration > 0 {
		item["duration_ms"] = rec.Duration.Milliseconds()
	}
	return item
}
