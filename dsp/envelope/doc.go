// Package envelope renders linear ADSR amplitude envelopes sized to a note.
//
// Unlike a streaming gate-driven envelope, [ADSR.Generate] knows the whole
// note duration up front: the sustain segment fills whatever time the attack,
// decay and release leave, and every segment is clipped to the note length.
package envelope
