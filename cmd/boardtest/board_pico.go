//go:build tinygo && (rp2040 || rp2350)

package main

const boardName = "pico"
