package radix

//============================================= Radix Transaction

// WithCheckpoint captures a Checkpoint on a, runs fn, and restores
// that checkpoint automatically if fn returns a non-nil error. This
// is syntactic sugar over CaptureCheckpoint/CheckpointRestore for the
// common try-and-roll-back-on-failure shape - the core checkpoint
// primitive only captures and restores on explicit request, so
// callers that want it done for them wrap their writes in this
// instead of remembering to call CheckpointRestore themselves.
func WithCheckpoint(a *Arena, fn func() error) error {
	cp := CaptureCheckpoint(a)

	if err := fn(); err != nil {
		CheckpointRestore(a, cp)
		return err
	}

	return nil
}
