package pluginmanager

import "sync/atomic"

// Instance is an RAII-equivalent guard around a value returned by a
// plugin's CreatePluginInstance entry point. Its Close method invokes the
// library's DestroyPluginInstance exactly once; calling Close again is a
// no-op. Ownership of the wrapped value belongs to the caller of
// CreateInstance — ownership of the library stays with the Library that
// created this Instance.
type Instance struct {
	value   any
	destroy func(any)
	closed  atomic.Bool
	onClose func()
}

func newInstance(value any, destroy func(any), onClose func()) *Instance {
	return &Instance{value: value, destroy: destroy, onClose: onClose}
}

// Value returns the plugin-owned value created by CreatePluginInstance.
func (i *Instance) Value() any {
	return i.value
}

// Close invokes the owning library's DestroyPluginInstance with this
// instance's value. It is safe to call more than once; only the first
// call has an effect.
func (i *Instance) Close() error {
	if !i.closed.CompareAndSwap(false, true) {
		return nil
	}
	i.destroy(i.value)
	if i.onClose != nil {
		i.onClose()
	}
	return nil
}
