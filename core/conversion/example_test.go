package conversion_test

import (
	"fmt"

	"basecalc/core/conversion"
)

func ExampleChangeBase() {
	trace, err := conversion.ChangeBase("6", 10, 2, conversion.DefaultMaxSteps)
	if err != nil {
		panic(err)
	}
	fmt.Println(trace.Render())
	// Output:
	// Converting 6 from decimal to base 2 as a simple number
	//
	// Converting the integer 6 from decimal to base 2:
	// 6 / 2 = 3 R 0
	// 3 / 2 = 1 R 1
	// 1 / 2 = 0 R 1
	//
	// Yielding result: 110
}

func ExampleChangeBase_fraction() {
	trace, err := conversion.ChangeBase("10,125", 8, 2, conversion.DefaultMaxSteps)
	if err != nil {
		panic(err)
	}
	fmt.Println(trace.Result())
	// Output: 1000 , 0010 1010 1
}

func ExampleChangeBase_decimalFraction() {
	trace, err := conversion.ChangeBase("0,75", 10, 2, conversion.DefaultMaxSteps)
	if err != nil {
		panic(err)
	}
	for _, step := range trace.Steps() {
		fmt.Println(step)
	}
	// Output:
	// Converting 0,75 from decimal to base 2 as a fraction
	//
	// Converting the integer 0 from decimal to base 2:
	//
	// Reading the decimal fraction ,75 as 3/4
	//
	// Converting the fraction 3/4 from decimal to base 2:
	// 3/4 * 2 = 3/2 (R1)
	// 1/2 * 2 = 1/1 (R1)
}
