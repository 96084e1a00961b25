// Package wavfile persists rendered notes as mono PCM WAV files.
package wavfile
