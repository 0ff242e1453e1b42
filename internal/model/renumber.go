package model

import (
	"fmt"
	"strconv"
)

// Renumber assigns the numbers 1..N to images in the given order, padded
// with zeros to the width of N. The caller decides the order.
//
//	Renumber(images) // with 12 images: "01", "02", ... "12"
func Renumber(images []*Image) {
	width := len(strconv.Itoa(len(images)))
	for i, img := range images {
		img.SetNumber(fmt.Sprintf("%0*d", width, i+1))
	}
}
