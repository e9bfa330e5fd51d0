// Package param is the lock-free parameter store that feeds the equalizer.
//
// Each [Parameter] keeps its plain value as float64 bits in an atomic word,
// so a UI or automation goroutine can write while the audio goroutine reads.
// [Store.Snapshot] reads every parameter exactly once and returns an
// [eq.Settings] value; values written concurrently may land in this snapshot
// or the next one.
package param
