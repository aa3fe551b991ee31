package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeProcessVideo = "video:process"

type ProcessVideoPayload struct {
	VideoID string `json:"video_id"`
}

// NewProcessVideoTask creates an Asynq task for processing a video by ID.
func NewProcessVideoTask(videoID string) (*asynq.Task, error) {
	p := ProcessVideoPayload{VideoID: videoID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal process-video payload: %w", err)
	}
	return asynq.NewTask(TypeProcessVideo, data), nil
}

// ParseProcessVideoPayload parses the task payload to ProcessVideoPayload.
func ParseProcessVideoPayload(t *asynq.Task) (ProcessVideoPayload, error) {
	var p ProcessVideoPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return ProcessVideoPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
