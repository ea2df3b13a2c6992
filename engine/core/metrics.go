package core

const frameAvgCount = 30

// Metrics tracks frame timing over a sliding window of frames.
type Metrics struct {
	counter       uint8
	frameTimes    [frameAvgCount]float64
	frameAvgMS    float64
	frames        int64
	accumulatedMS float64
	fps           float64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Update records one frame. elapsed is the frame duration in seconds.
func (m *Metrics) Update(elapsed float64) {
	frameMS := elapsed * 1000.0
	m.frameTimes[m.counter] = frameMS
	if m.counter == frameAvgCount-1 {
		sum := float64(0)
		for i := 0; i < frameAvgCount; i++ {
			sum += m.frameTimes[i]
		}
		m.frameAvgMS = sum / float64(frameAvgCount)
	}
	m.counter = (m.counter + 1) % frameAvgCount

	m.frames++
	m.accumulatedMS += frameMS
	if m.accumulatedMS >= 1000.0 {
		m.fps = float64(m.frames) * 1000.0 / m.accumulatedMS
		m.frames = 0
		m.accumulatedMS = 0
	}
}

// FrameAvgMS is the average frame time in milliseconds over the last window.
func (m *Metrics) FrameAvgMS() float64 {
	return m.frameAvgMS
}

// FPS is the frame rate measured over the last completed second.
func (m *Metrics) FPS() float64 {
	return m.fps
}
