//go:build !cl_khr_egl_image

package cl3

// EGL image sharing needs the cl_khr_egl_image tag.
type eglImageEntries interface{}
