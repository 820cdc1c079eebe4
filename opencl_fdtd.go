//go:build opencl

package main

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// openCLFieldSolver offloads whole-grid FDTD steps to an OpenCL device. The
// host engine stays authoritative: buffers are uploaded only when the host
// copies changed, stepped in batches on the device, and read back afterwards.
type openCLFieldSolver struct {
	context          *cl.Context
	queue            *cl.CommandQueue
	program          *cl.Program
	hKernel          *cl.Kernel
	eKernel          *cl.Kernel
	clearKernel      *cl.Kernel
	ezBuf            *cl.MemObject
	hxBuf            *cl.MemObject
	hyBuf            *cl.MemObject
	epsBuf           *cl.MemObject
	obstacleIndexBuf *cl.MemObject
	width            int
	height           int
	obstacleIndices  []int32
	obstacleCount    int
	materialSynced   bool
	deviceName       string
	coldStart        bool
	debugVerify      bool
	debugScratch     []float32
}

const verifyTolerance = 1e-4

const fdtdKernelSource = `__kernel void update_h(
    const int width,
    const int height,
    const float k,
    __global const float* ez,
    __global float* hx,
    __global float* hy)
{
    int idx = get_global_id(0);
    int size = width * height;
    if (idx >= size) {
        return;
    }
    int x = idx % width;
    int y = idx / width;
    if (y < height - 1) {
        hx[idx] -= k * (ez[idx + width] - ez[idx]);
    }
    if (x < width - 1) {
        hy[idx] += k * (ez[idx + 1] - ez[idx]);
    }
}

__kernel void update_e(
    const int width,
    const int height,
    const float k,
    __global const float* hx,
    __global const float* hy,
    __global const float* eps,
    __global float* ez)
{
    int idx = get_global_id(0);
    int size = width * height;
    if (idx >= size) {
        return;
    }
    int x = idx % width;
    int y = idx / width;
    if (x <= 0 || x >= width - 1 || y <= 0 || y >= height - 1) {
        return;
    }
    float curl = (hy[idx] - hy[idx - 1]) - (hx[idx] - hx[idx - width]);
    ez[idx] += (k / eps[idx]) * curl;
}

__kernel void clear_obstacles(
    __global float* ez,
    __global const int* obstacle_indices,
    const int obstacle_count)
{
    int gid = get_global_id(0);
    if (gid >= obstacle_count) {
        return;
    }
    ez[obstacle_indices[gid]] = 0.0f;
}`

func newOpenCLFieldSolver(width, height int) (*openCLFieldSolver, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	var device *cl.Device
	for _, p := range platforms {
		devices, derr := p.GetDevices(cl.DeviceTypeGPU)
		if derr != nil && derr != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			device = devices[0]
			break
		}
	}
	if device == nil {
		for _, p := range platforms {
			devices, derr := p.GetDevices(cl.DeviceTypeCPU)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				device = devices[0]
				break
			}
		}
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		context.Release()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	program, err := context.CreateProgramWithSource([]string{fdtdKernelSource})
	if err != nil {
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		program.Release()
		queue.Release()
		context.Release()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}

	solver := &openCLFieldSolver{
		context:     context,
		queue:       queue,
		program:     program,
		width:       width,
		height:      height,
		deviceName:  device.Name(),
		coldStart:   true,
		debugVerify: verifyOpenCLSyncFlag != nil && *verifyOpenCLSyncFlag,
	}

	solver.hKernel, err = program.CreateKernel("update_h")
	if err != nil {
		solver.Close()
		return nil, fmt.Errorf("creating magnetic update kernel: %w", err)
	}
	solver.eKernel, err = program.CreateKernel("update_e")
	if err != nil {
		solver.Close()
		return nil, fmt.Errorf("creating electric update kernel: %w", err)
	}
	solver.clearKernel, err = program.CreateKernel("clear_obstacles")
	if err != nil {
		solver.Close()
		return nil, fmt.Errorf("creating obstacle kernel: %w", err)
	}

	size := width * height
	floatBytes := size * int(unsafe.Sizeof(float32(0)))
	solver.ezBuf, err = context.CreateEmptyBuffer(cl.MemReadWrite, floatBytes)
	if err != nil {
		solver.Close()
		return nil, fmt.Errorf("allocating electric buffer: %w", err)
	}
	solver.hxBuf, err = context.CreateEmptyBuffer(cl.MemReadWrite, floatBytes)
	if err != nil {
		solver.Close()
		return nil, fmt.Errorf("allocating magnetic x buffer: %w", err)
	}
	solver.hyBuf, err = context.CreateEmptyBuffer(cl.MemReadWrite, floatBytes)
	if err != nil {
		solver.Close()
		return nil, fmt.Errorf("allocating magnetic y buffer: %w", err)
	}
	solver.epsBuf, err = context.CreateEmptyBuffer(cl.MemReadOnly, floatBytes)
	if err != nil {
		solver.Close()
		return nil, fmt.Errorf("allocating permittivity buffer: %w", err)
	}
	solver.obstacleIndexBuf, err = context.CreateEmptyBuffer(cl.MemReadOnly, size*int(unsafe.Sizeof(int32(0))))
	if err != nil {
		solver.Close()
		return nil, fmt.Errorf("allocating obstacle index buffer: %w", err)
	}

	if err := solver.hKernel.SetArgs(
		int32(width),
		int32(height),
		stepCoeff,
		solver.ezBuf,
		solver.hxBuf,
		solver.hyBuf,
	); err != nil {
		solver.Close()
		return nil, fmt.Errorf("setting magnetic kernel arguments: %w", err)
	}
	if err := solver.eKernel.SetArgs(
		int32(width),
		int32(height),
		stepCoeff,
		solver.hxBuf,
		solver.hyBuf,
		solver.epsBuf,
		solver.ezBuf,
	); err != nil {
		solver.Close()
		return nil, fmt.Errorf("setting electric kernel arguments: %w", err)
	}
	if err := solver.clearKernel.SetArgs(
		solver.ezBuf,
		solver.obstacleIndexBuf,
		int32(0),
	); err != nil {
		solver.Close()
		return nil, fmt.Errorf("setting obstacle kernel arguments: %w", err)
	}

	return solver, nil
}

func (s *openCLFieldSolver) ensureObstacleIndices(obstacle []bool) []int32 {
	size := s.width * s.height
	if len(obstacle) != size {
		s.obstacleIndices = s.obstacleIndices[:0]
		return s.obstacleIndices
	}
	if cap(s.obstacleIndices) < size {
		s.obstacleIndices = make([]int32, 0, size)
	} else {
		s.obstacleIndices = s.obstacleIndices[:0]
	}
	for i, blocked := range obstacle {
		if blocked {
			s.obstacleIndices = append(s.obstacleIndices, int32(i))
		}
	}
	return s.obstacleIndices
}

func (s *openCLFieldSolver) ensureDebugScratch(size int) []float32 {
	if cap(s.debugScratch) < size {
		s.debugScratch = make([]float32, size)
	}
	s.debugScratch = s.debugScratch[:size]
	return s.debugScratch
}

func (s *openCLFieldSolver) verifyBufferMatchesSlice(buf *cl.MemObject, host []float32, label string) error {
	if len(host) == 0 {
		return nil
	}
	scratch := s.ensureDebugScratch(len(host))
	if _, err := s.queue.EnqueueReadBufferFloat32(buf, true, 0, scratch, nil); err != nil {
		return fmt.Errorf("reading %s for verification: %w", label, err)
	}
	for i, hv := range host {
		if diff := math.Abs(float64(scratch[i] - hv)); diff > verifyTolerance {
			return fmt.Errorf("%s mismatch at index %d: device=%f host=%f diff=%f", label, i, scratch[i], hv, diff)
		}
	}
	return nil
}

// Step runs the requested number of leapfrog ticks on the device and reads
// the field buffers back into the engine, advancing its clock the same way
// the CPU path does.
func (s *openCLFieldSolver) Step(sim *engine, steps int) error {
	if steps <= 0 {
		return nil
	}
	field := sim.field
	material := sim.material
	size := s.width * s.height
	if len(field.ez) != size || len(field.hx) != size || len(field.hy) != size {
		return fmt.Errorf("unexpected field buffer size")
	}
	if field.ezWasModified() {
		if _, err := s.queue.EnqueueWriteBufferFloat32(s.ezBuf, false, 0, field.ez, nil); err != nil {
			return fmt.Errorf("writing electric buffer: %w", err)
		}
		field.clearEzDirty()
	} else if s.debugVerify {
		if err := s.verifyBufferMatchesSlice(s.ezBuf, field.ez, "pre-step ez"); err != nil {
			return err
		}
	}
	// The device keeps the magnetic buffers current between frames; only the
	// first step needs an upload.
	if s.coldStart {
		if _, err := s.queue.EnqueueWriteBufferFloat32(s.hxBuf, false, 0, field.hx, nil); err != nil {
			return fmt.Errorf("writing magnetic x buffer: %w", err)
		}
		if _, err := s.queue.EnqueueWriteBufferFloat32(s.hyBuf, false, 0, field.hy, nil); err != nil {
			return fmt.Errorf("writing magnetic y buffer: %w", err)
		}
	}
	if !s.materialSynced || material.wasModified() {
		if _, err := s.queue.EnqueueWriteBufferFloat32(s.epsBuf, false, 0, material.epsilon, nil); err != nil {
			return fmt.Errorf("writing permittivity buffer: %w", err)
		}
		indices := s.ensureObstacleIndices(material.obstacle)
		s.obstacleCount = len(indices)
		if s.obstacleCount > 0 {
			ptr := unsafe.Pointer(&indices[0])
			byteLen := len(indices) * int(unsafe.Sizeof(int32(0)))
			if _, err := s.queue.EnqueueWriteBuffer(s.obstacleIndexBuf, false, 0, byteLen, ptr, nil); err != nil {
				return fmt.Errorf("writing obstacle index buffer: %w", err)
			}
		}
		if err := s.clearKernel.SetArgInt32(2, int32(s.obstacleCount)); err != nil {
			return fmt.Errorf("setting obstacle count: %w", err)
		}
		material.clearDirty()
		s.materialSynced = true
	}
	global := []int{size}
	for step := 0; step < steps; step++ {
		if _, err := s.queue.EnqueueNDRangeKernel(s.hKernel, nil, global, nil, nil); err != nil {
			return fmt.Errorf("enqueueing magnetic update: %w", err)
		}
		if _, err := s.queue.EnqueueNDRangeKernel(s.eKernel, nil, global, nil, nil); err != nil {
			return fmt.Errorf("enqueueing electric update: %w", err)
		}
		if s.obstacleCount > 0 {
			if _, err := s.queue.EnqueueNDRangeKernel(s.clearKernel, nil, []int{s.obstacleCount}, nil, nil); err != nil {
				return fmt.Errorf("clearing obstacles: %w", err)
			}
		}
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.ezBuf, true, 0, field.ez, nil); err != nil {
		return fmt.Errorf("reading electric buffer: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.hxBuf, true, 0, field.hx, nil); err != nil {
		return fmt.Errorf("reading magnetic x buffer: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.hyBuf, true, 0, field.hy, nil); err != nil {
		return fmt.Errorf("reading magnetic y buffer: %w", err)
	}
	sim.clock += float64(steps) * timeScale
	s.coldStart = false
	return nil
}

func (s *openCLFieldSolver) Close() {
	if s.obstacleIndexBuf != nil {
		s.obstacleIndexBuf.Release()
		s.obstacleIndexBuf = nil
	}
	if s.epsBuf != nil {
		s.epsBuf.Release()
		s.epsBuf = nil
	}
	if s.hyBuf != nil {
		s.hyBuf.Release()
		s.hyBuf = nil
	}
	if s.hxBuf != nil {
		s.hxBuf.Release()
		s.hxBuf = nil
	}
	if s.ezBuf != nil {
		s.ezBuf.Release()
		s.ezBuf = nil
	}
	if s.clearKernel != nil {
		s.clearKernel.Release()
		s.clearKernel = nil
	}
	if s.eKernel != nil {
		s.eKernel.Release()
		s.eKernel = nil
	}
	if s.hKernel != nil {
		s.hKernel.Release()
		s.hKernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

func (s *openCLFieldSolver) DeviceName() string {
	return s.deviceName
}
