// Package submit builds job descriptors and publishes them into the farm
// inbox.
package submit

import "errors"

// Submission precondition errors. Connectivity errors (unconfigured farm,
// missing inbox) live in the config package; these cover the submission
// request itself.
var (
	// ErrNoDocument indicates there is no saved document to submit.
	ErrNoDocument = errors.New("no document to submit (save the file first)")

	// ErrNoTemplateSelected indicates no job template was chosen and none is
	// available to default to.
	ErrNoTemplateSelected = errors.New("no template selected")

	// ErrNoScenes indicates the manifest carried no scenes.
	ErrNoScenes = errors.New("no scenes to submit")

	// ErrCooldownActive indicates a submit request arrived inside the
	// client-side cooldown window after a previous batch. It is a throttle,
	// not a failure: retrying after the window succeeds.
	ErrCooldownActive = errors.New("already submitted, please wait a few seconds")

	// ErrInvalidChunkSize indicates chunk_size is out of the accepted range.
	ErrInvalidChunkSize = errors.New("chunk_size must be between 1 and 10000")

	// ErrInvalidPriority indicates priority is out of the accepted range.
	ErrInvalidPriority = errors.New("priority must be between 1 and 100")

	// ErrInvalidFrameRange indicates frame_end precedes frame_start.
	ErrInvalidFrameRange = errors.New("frame range end must not precede start")
)
