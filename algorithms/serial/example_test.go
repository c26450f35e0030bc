package serial_test

import (
	"fmt"

	"github.com/RyanBlaney/sonido-sets/algorithms/serial"
)

func ExampleRow_Combinatoriality() {
	row := serial.MustNewRow(12, 0, 11, 1, 10, 2, 9, 3, 8, 4, 7, 5, 6)
	c, err := row.Combinatoriality()
	if err != nil {
		panic(err)
	}
	fmt.Println(c)
	fmt.Println(row.AllInterval())
	// Output:
	// P6/6, I5, RI11
	// true
}

func ExampleRow_Form() {
	row := serial.MustNewRow(12, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)
	form, err := serial.ParseRowForm("I3")
	if err != nil {
		panic(err)
	}
	fmt.Println(row.Form(form))
	// Output: [3 2 1 0 11 10 9 8 7 6 5 4]
}
