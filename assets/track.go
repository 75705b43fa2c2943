package assets

import "math"

// Track generates the looping background tune as raw 16-bit little-endian
// stereo PCM. There are no audio files to ship; the tune is an eight-note
// square-wave loop with a short decay on each note.
func Track(sampleRate int) []byte {
	notes := []float64{220.00, 261.63, 329.63, 293.66, 220.00, 196.00, 246.94, 261.63}
	noteSamples := sampleRate / 2

	out := make([]byte, 0, len(notes)*noteSamples*4)
	for _, freq := range notes {
		period := float64(sampleRate) / freq
		for i := 0; i < noteSamples; i++ {
			// square wave with a linear decay envelope
			v := 1.0
			if math.Mod(float64(i), period) > period/2 {
				v = -1.0
			}
			env := 1.0 - float64(i)/float64(noteSamples)
			sample := int16(v * env * 5500)

			lo := byte(sample)
			hi := byte(sample >> 8)
			out = append(out, lo, hi, lo, hi)
		}
	}
	return out
}
