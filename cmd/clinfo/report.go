package main

import (
	"fmt"

	"github.com/cwbudde/cl3"
	"github.com/ethereum/go-ethereum/log"
	"github.com/pkg/errors"
)

// Param is one query result. Failed queries keep the native status name in
// Error instead of aborting the report.
type Param struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

func (p Param) Failed() bool { return p.Error != "" }

type DeviceReport struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Vendor string `json:"vendor,omitempty"`
}

type PlatformReport struct {
	Index   int            `json:"index"`
	Params  []Param        `json:"params"`
	Devices []DeviceReport `json:"devices"`
}

type ArgReport struct {
	Index  uint32  `json:"index"`
	Params []Param `json:"params"`
}

type KernelReport struct {
	Name      string      `json:"name"`
	Info      []Param     `json:"info"`
	Args      []ArgReport `json:"args"`
	WorkGroup []Param     `json:"work_group"`
}

// BuildError carries the build log of a program that failed to compile.
type BuildError struct {
	Status cl3.Status
	Log    string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build failed: %s", cl3.ErrorText(e.Status))
}

// statusText renders err for a report cell: the native status name when
// there is one, the message otherwise.
func statusText(err error) string {
	var st cl3.Status
	if errors.As(err, &st) {
		return cl3.ErrorText(st)
	}
	return err.Error()
}

func param(name fmt.Stringer, v cl3.InfoType, err error, format func(cl3.InfoType) string) Param {
	if err != nil {
		return Param{Name: name.String(), Error: statusText(err)}
	}
	return Param{Name: name.String(), Value: format(v)}
}

// platformIDs lists the platforms of b. An ICD loader without any vendor
// ICD reports CL_PLATFORM_NOT_FOUND_KHR, which is treated as no platforms.
func platformIDs(b backend) ([]cl3.PlatformID, error) {
	ids, err := b.PlatformIDs()
	var st cl3.Status
	if errors.As(err, &st) && st == cl3.PlatformNotFoundKHR {
		log.Debug("ICD loader found no platforms")
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "list platforms")
	}
	return ids, nil
}

func collectPlatforms(b backend) ([]PlatformReport, error) {
	ids, err := platformIDs(b)
	if err != nil {
		return nil, err
	}
	log.Debug("Found platforms", "count", len(ids))

	reports := make([]PlatformReport, 0, len(ids))
	for i, id := range ids {
		r := PlatformReport{Index: i, Params: make([]Param, 0, len(cl3.PlatformInfos))}
		for _, sel := range cl3.PlatformInfos {
			v, err := b.PlatformInfo(id, sel)
			if err != nil {
				log.Debug("Platform query failed", "platform", i, "param", sel, "err", err)
			}
			r.Params = append(r.Params, param(sel, v, err, formatPlatformValue(sel)))
		}

		devices, err := b.DeviceIDs(id)
		if err != nil {
			log.Warn("Could not list devices", "platform", i, "err", err)
		}
		for j, dev := range devices {
			dr := DeviceReport{Index: j}
			if dr.Name, err = b.DeviceText(dev, cl3.DeviceName); err != nil {
				dr.Name = statusText(err)
			}
			dr.Vendor, _ = b.DeviceText(dev, cl3.DeviceVendor)
			r.Devices = append(r.Devices, dr)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

func formatPlatformValue(sel cl3.PlatformInfo) func(cl3.InfoType) string {
	if sel == cl3.PlatformNumericVersion {
		return func(v cl3.InfoType) string {
			n, err := v.Uint()
			if err != nil {
				return v.String()
			}
			return cl3.Version(n).String()
		}
	}
	return cl3.InfoType.String
}

// collectKernels builds source on the configured device and reports every
// kernel it defines. Every object created here is released exactly once,
// also on the error paths.
func collectKernels(b backend, source string, cfg Config) (reports []KernelReport, err error) {
	ids, err := platformIDs(b)
	if err != nil {
		return nil, err
	}
	if cfg.Platform >= len(ids) {
		return nil, errors.Errorf("platform %d not found (%d available)", cfg.Platform, len(ids))
	}
	platform := ids[cfg.Platform]

	devices, err := b.DeviceIDs(platform)
	if err != nil {
		return nil, errors.Wrapf(err, "list devices of platform %d", cfg.Platform)
	}
	if cfg.Device >= len(devices) {
		return nil, errors.Errorf("device %d not found on platform %d (%d available)", cfg.Device, cfg.Platform, len(devices))
	}
	device := devices[cfg.Device]

	release := func(name string, fn func() error) {
		if rerr := fn(); rerr != nil {
			log.Error("Release failed", "object", name, "err", rerr)
			if err == nil {
				err = errors.Wrapf(rerr, "release %s", name)
			}
		}
	}

	ctxID, err := b.CreateContext(platform, []cl3.DeviceID{device})
	if err != nil {
		return nil, errors.Wrap(err, "create context")
	}
	ctx := cl3.Own(ctxID, b.ReleaseContext)
	defer release("context", ctx.Release)

	progID, err := b.CreateProgram(ctx.Handle(), source)
	if err != nil {
		return nil, errors.Wrap(err, "create program")
	}
	prog := cl3.Own(progID, b.ReleaseProgram)
	defer release("program", prog.Release)

	log.Info("Building program", "platform", cfg.Platform, "device", cfg.Device, "options", cfg.Options)
	if err := b.BuildProgram(prog.Handle(), []cl3.DeviceID{device}, cfg.Options); err != nil {
		var st cl3.Status
		if errors.As(err, &st) && st == cl3.BuildProgramFailure {
			buildLog, lerr := b.BuildLog(prog.Handle(), device)
			if lerr != nil {
				log.Warn("Could not read build log", "err", lerr)
			}
			return nil, &BuildError{Status: st, Log: buildLog}
		}
		return nil, errors.Wrap(err, "build program")
	}

	kernels, err := b.CreateKernels(prog.Handle())
	if err != nil {
		return nil, errors.Wrap(err, "create kernels")
	}
	owned := make([]*cl3.Owned[cl3.Kernel], len(kernels))
	for i, k := range kernels {
		owned[i] = cl3.Own(k, b.ReleaseKernel)
	}
	defer func() {
		for _, k := range owned {
			release("kernel", k.Release)
		}
	}()
	log.Debug("Created kernels", "count", len(kernels))

	reports = make([]KernelReport, 0, len(kernels))
	for _, k := range owned {
		reports = append(reports, kernelReport(b, k.Handle(), device))
	}
	return reports, nil
}

func kernelReport(b backend, k cl3.Kernel, device cl3.DeviceID) KernelReport {
	var r KernelReport
	for _, sel := range cl3.KernelInfos {
		v, err := b.KernelInfo(k, sel)
		if sel == cl3.KernelFunctionName && err == nil {
			r.Name, _ = v.Text()
		}
		r.Info = append(r.Info, param(sel, v, err, cl3.InfoType.String))
	}

	var numArgs uint32
	if v, err := b.KernelInfo(k, cl3.KernelNumArgs); err == nil {
		numArgs, _ = v.Uint()
	}
	for i := uint32(0); i < numArgs; i++ {
		arg := ArgReport{Index: i}
		for _, sel := range cl3.KernelArgInfos {
			v, err := b.KernelArgInfo(k, i, sel)
			arg.Params = append(arg.Params, param(sel, v, err, formatArgValue(sel)))
		}
		r.Args = append(r.Args, arg)
	}

	for _, sel := range cl3.KernelWorkGroupInfos {
		v, err := b.KernelWorkGroupInfo(k, device, sel)
		r.WorkGroup = append(r.WorkGroup, param(sel, v, err, cl3.InfoType.String))
	}
	return r
}

var (
	addressQualifiers = map[uint32]string{
		cl3.KernelArgAddressGlobal:   "global",
		cl3.KernelArgAddressLocal:    "local",
		cl3.KernelArgAddressConstant: "constant",
		cl3.KernelArgAddressPrivate:  "private",
	}
	accessQualifiers = map[uint32]string{
		cl3.KernelArgAccessReadOnly:  "read_only",
		cl3.KernelArgAccessWriteOnly: "write_only",
		cl3.KernelArgAccessReadWrite: "read_write",
		cl3.KernelArgAccessNone:      "none",
	}
	typeQualifiers = []struct {
		bit  uint64
		name string
	}{
		{cl3.KernelArgTypeConst, "const"},
		{cl3.KernelArgTypeRestrict, "restrict"},
		{cl3.KernelArgTypeVolatile, "volatile"},
		{cl3.KernelArgTypePipe, "pipe"},
	}
)

func formatArgValue(sel cl3.KernelArgInfo) func(cl3.InfoType) string {
	switch sel {
	case cl3.KernelArgAddressQualifier:
		return qualifierName(addressQualifiers)
	case cl3.KernelArgAccessQualifier:
		return qualifierName(accessQualifiers)
	case cl3.KernelArgTypeQualifier:
		return func(v cl3.InfoType) string {
			bits, err := v.Ulong()
			if err != nil {
				return v.String()
			}
			var out string
			for _, q := range typeQualifiers {
				if bits&q.bit != 0 {
					if out != "" {
						out += " "
					}
					out += q.name
				}
			}
			if out == "" {
				return "none"
			}
			return out
		}
	default:
		return cl3.InfoType.String
	}
}

func qualifierName(names map[uint32]string) func(cl3.InfoType) string {
	return func(v cl3.InfoType) string {
		n, err := v.Uint()
		if err != nil {
			return v.String()
		}
		if name, ok := names[n]; ok {
			return name
		}
		return fmt.Sprintf("%#x", n)
	}
}
