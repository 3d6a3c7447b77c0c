//go:build !cl_khr_egl_event

package cl3

type eglEventEntries interface{}
