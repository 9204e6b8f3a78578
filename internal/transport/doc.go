// Package transport carries coded Web Push records to push services.
//
// HTTPTransport is the real HTTPS implementation; Fixture is a scripted
// stand-in satisfying the same contract, so the dispatcher needs no test
// mode of its own.
package transport
