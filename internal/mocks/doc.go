// Package mocks содержит моки интерфейсов, сгенерированные mockery по .mockery.yaml
package mocks

//go:generate sh -c "cd ../.. && mockery"
