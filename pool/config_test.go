package pool

import "testing"

func TestConfigValidate(t *testing.T) {
	t.Run("default config is valid", func(t *testing.T) {
		if err := DefaultConfig().Validate(); err != nil {
			t.Fatalf("expected default config to be valid, got %v", err)
		}
	})

	t.Run("negative refill batch is invalid", func(t *testing.T) {
		c := Config{RefillBatch: -1}
		if err := c.Validate(); err == nil {
			t.Fatal("expected an error for a negative refill batch")
		}
	})

	t.Run("zero refill batch falls back to the package default", func(t *testing.T) {
		c := Config{}
		if err := c.Validate(); err != nil {
			t.Fatalf("expected zero-value RefillBatch to be valid, got %v", err)
		}
		if got := c.batchSize(); got != refillBatch {
			t.Fatalf("expected batchSize() to fall back to %d, got %d", refillBatch, got)
		}
	})
}
