package core_test

import (
	"fmt"

	"github.com/cwbudde/magnet-engine/dsp/core"
)

func ExampleApplySamplingOptions() {
	cfg := core.ApplySamplingOptions(
		core.WithResolution(128),
		core.WithEndpoint(false),
	)

	fmt.Printf("resolution=%d endpoint=%v\n", cfg.Resolution, cfg.Endpoint)

	// Output:
	// resolution=128 endpoint=false
}

func ExampleWrapDegrees() {
	fmt.Println(core.WrapDegrees(-90), core.WrapDegrees(720), core.WrapDegrees(365))

	// Output:
	// 270 0 5
}
