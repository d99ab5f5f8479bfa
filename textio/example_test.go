package textio_test

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/nessan/utilities/textio"
)

func ExampleReadLine() {
	input := "# configuration\n" +
		"host = example.com\n" +
		"\n" +
		"flags = -a \\\n" +
		"        -b   # joined onto the line above\n"

	sc := bufio.NewScanner(strings.NewReader(input))

	for {
		line, n := textio.ReadLine(sc, textio.DefaultMarkers)
		if n == 0 {
			break
		}

		fmt.Println(line)
	}

	// Output:
	// host = example.com
	// flags = -a -b
}

func ExampleCountLines() {
	input := "one # trailing comment\n\ntwo\n# only a comment\nthree\n"

	logical, _ := textio.CountLines(strings.NewReader(input), textio.DefaultMarkers)
	raw, _ := textio.CountLines(strings.NewReader(input), "")

	fmt.Println(logical)
	fmt.Println(raw)

	// Output:
	// 3
	// 5
}
