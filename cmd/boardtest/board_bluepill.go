//go:build tinygo && stm32f103

package main

const boardName = "bluepill"
