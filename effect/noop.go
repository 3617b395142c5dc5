package effect

// NoOp leaves every sample unchanged.
type NoOp struct{}

func (NoOp) Name() string {
	return "No-Op"
}

func (NoOp) ProcessSample(input float32) float32 {
	return input
}
