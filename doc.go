// Package cl3 is a thin typed binding for the OpenCL C API.
//
// Every function maps onto exactly one native entry point of the installed
// OpenCL driver. Output parameters become return values and a non-success
// native status is returned unchanged as a Status error:
//
//	ids, err := cl3.GetPlatformIDs()
//	if err != nil {
//		var status cl3.Status
//		if errors.As(err, &status) {
//			// status is the code the driver returned
//		}
//	}
//
// Property queries use the driver's two-call protocol (ask for the size,
// then fill a buffer of that size) and wrap the result in an InfoType,
// whose kind is fixed by the query selector.
//
// Handles are owned by the driver. The binding never retains, releases or
// finalizes anything on its own; see Owned for explicit single-release
// bookkeeping.
//
// The native driver is linked with the "opencl" build tag. Optional
// features are selected with further tags and are absent from the package
// when their tag is not set:
//
//	cl_version_2_1    CloneKernel, GetKernelSubGroupInfo
//	cl_khr_egl_image  CreateFromEGLImage, EnqueueAcquireEGLObjects, EnqueueReleaseEGLObjects
//	cl_khr_egl_event  CreateEventFromEGLSync
package cl3
