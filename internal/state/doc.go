// Package state owns the dense complex amplitude vector of the simulated
// qubit register and declares the kernel contract (Engine) that the
// numerical backends implement.
//
// The basis index convention is little-endian: device wire w owns bit 2^w
// of the flattened amplitude index, so for two qubits the basis states in
// order are |00>, |10>, |01>, |11> when written wire-0-first.
package state
