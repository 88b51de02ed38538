// Package models defines data structures for the sr-submit client.
package models

// JobDescriptor is the wire artifact published into the farm inbox.
// Field order here fixes the JSON key order, keeping written files
// deterministic and diffable. A descriptor, once written, is immutable.
type JobDescriptor struct {
	Version         int       `json:"_version"`
	TemplateID      string    `json:"template_id"`
	JobName         string    `json:"job_name"`
	SubmittedByHost string    `json:"submitted_by_host"`
	SubmittedAtMS   int64     `json:"submitted_at_ms"`
	Overrides       Overrides `json:"overrides"`
	FrameStart      int       `json:"frame_start"`
	FrameEnd        int       `json:"frame_end"`
	ChunkSize       int       `json:"chunk_size"`
	Priority        int       `json:"priority"`
}

// Overrides carries per-submission values keyed by the template's flag IDs.
// SceneName is only set for multi-scene batches or non-default scene names;
// the dispatcher falls back to the document's active scene when absent.
type Overrides struct {
	SceneFile  string `json:"scene_file"`
	OutputPath string `json:"output_path"`
	SceneName  string `json:"scene_name,omitempty"`
}

// Scene is one logical scene of the host document, as reported by the host
// application through the scene manifest.
type Scene struct {
	Name       string `json:"name"`
	FrameStart int    `json:"frame_start"`
	FrameEnd   int    `json:"frame_end"`
	OutputPath string `json:"output_path"`
}

// Manifest is the collaborator boundary with the host application: the
// document being submitted and its scenes, exported as a JSON file.
type Manifest struct {
	Document    string  `json:"document"`
	ActiveScene string  `json:"active_scene,omitempty"`
	Scenes      []Scene `json:"scenes"`
}

// SubmitSettings are the resolved inputs to descriptor building: template
// choice, batch parameters, and the override toggles with their values.
type SubmitSettings struct {
	TemplateID string
	ChunkSize  int
	Priority   int

	OverrideRange bool
	FrameStart    int
	FrameEnd      int

	OverrideOutput bool
	OutputPath     string
}
