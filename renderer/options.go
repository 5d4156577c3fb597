package renderer

type Options struct {
	// Frame dims.
	FrameW uint32
	FrameH uint32

	// Number of samples accumulated by RenderAll.
	SamplesPerPixel uint32

	// Number of parallel tracers; 0 selects one per CPU.
	Workers uint32

	// Block heights are aligned to this many rows.
	BlockAlign uint32
}
