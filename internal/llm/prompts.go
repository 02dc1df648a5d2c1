package llm

import _ "embed"

var (
	//go:embed prompts/bs_detector_v1.txt
	bsDetectorV1 string
)

// PromptTemplate returns the system prompt text and whether the version was recognized.
func PromptTemplate(version string) (string, bool) {
	switch version {
	case "v1":
		return bsDetectorV1, true
	default:
		return bsDetectorV1, false
	}
}
