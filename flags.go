package main

import "flag"

// Command-line flags that control optional rendering, scene setup, and runtime
// behavior.
var (
	// showObstaclesFlag toggles the colored obstacle overlay; when disabled
	// obstacle cells render black.
	showObstaclesFlag = flag.Bool("show-obstacles", true, "render obstacle cells with a visible overlay color")

	// showVectorsFlag enables the down-sampled magnetic field vector overlay.
	showVectorsFlag = flag.Bool("show-vectors", false, "draw a down-sampled H-field vector overlay")

	// fiberPresetFlag paints the optical fiber cross-section at startup.
	fiberPresetFlag = flag.Bool("fiber-preset", true, "paint an optical fiber core/cladding preset at startup")

	// randomObstaclesFlag scatters procedural obstacle segments at startup.
	randomObstaclesFlag = flag.Bool("random-obstacles", false, "scatter random obstacle segments at startup")

	// useOpenCLFlag requests the GPU solver; builds without the opencl tag
	// fall back to the CPU solver with a log message.
	useOpenCLFlag = flag.Bool("opencl", false, "step the field on the GPU when OpenCL support is compiled in")

	// verifyOpenCLSyncFlag compares device buffers against host state when the
	// GPU solver skips redundant uploads.
	verifyOpenCLSyncFlag = flag.Bool("verify-opencl-sync", false, "compare OpenCL buffers before/after simulation steps when skipping host uploads")

	// debugFlag enables the FPS, step timing, and field magnitude overlay.
	debugFlag = flag.Bool("debug", false, "show FPS, simulation timing, and peak field overlay")

	// recordDefaultPGO captures a CPU profile into default.pgo at startup.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "capture default.pgo for 15s after startup")
)
