package analysis

import "errors"

// ErrEmptyRequirement indicates the caller submitted blank/whitespace-only
// requirement text. The analyzer itself never fails; this is the one
// user-visible rejection, raised before the analyzer is invoked.
var ErrEmptyRequirement = errors.New("requirement text is empty")

// ErrNoArtifactStore indicates export was requested but no artifact store
// is configured for this deployment.
var ErrNoArtifactStore = errors.New("artifact store not configured")
