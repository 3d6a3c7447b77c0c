//go:build cl_khr_egl_image || cl_khr_egl_event

package cl3

// EGL object handles as seen by cl_khr_egl_image and cl_khr_egl_event.
type (
	EGLDisplayKHR uintptr
	EGLImageKHR   uintptr
	EGLSyncKHR    uintptr
)

// EGLImagePropertiesKHR is one entry of a zero-terminated
// cl_egl_image_properties_khr list.
type EGLImagePropertiesKHR int

// Command types reported for events created by the EGL extensions.
const (
	CommandAcquireEGLObjectsKHR  uint32 = 0x202D
	CommandReleaseEGLObjectsKHR  uint32 = 0x202E
	CommandEGLFenceSyncObjectKHR uint32 = 0x202F
)
