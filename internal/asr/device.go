package asr

import (
	"log"
	"os"
)

// PickDevice chooses the processing device hint sent to the recognition
// service: "gpu" when an accelerator is visible at runtime, "cpu" otherwise.
// A non-empty override wins. The choice affects performance only, never the
// transcribed text.
func PickDevice(override string) string {
	if override != "" {
		log.Printf("[ASR] Using configured device: %s", override)
		return override
	}

	device := "cpu"
	if os.Getenv("CUDA_VISIBLE_DEVICES") != "" {
		device = "gpu"
	} else if _, err := os.Stat("/dev/nvidia0"); err == nil {
		device = "gpu"
	}
	log.Printf("[ASR] Using device: %s", device)
	return device
}
