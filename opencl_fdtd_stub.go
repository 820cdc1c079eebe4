//go:build !opencl

package main

import "errors"

type openCLFieldSolver struct{}

func newOpenCLFieldSolver(width, height int) (*openCLFieldSolver, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLFieldSolver) Step(sim *engine, steps int) error {
	return errors.New("OpenCL solver unavailable")
}

func (s *openCLFieldSolver) Close() {}

func (s *openCLFieldSolver) DeviceName() string { return "" }
