// Command divisors is a small console exercise, unrelated to the web
// application: it reads integers until -1 and prints the first and last
// proper divisor of each. Prime numbers fall back to 1 and the number
// itself.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

func main() {
	numbers := readNumbers(os.Stdin, os.Stdout)
	printDivisors(os.Stdout, numbers)
}

// readNumbers prompts for integers until -1 is entered. Only values
// greater than 1 that were not entered before are kept; anything else,
// including malformed input, is ignored and the prompt repeats.
func readNumbers(in io.Reader, out io.Writer) []int {
	numbers := []int{}
	seen := map[int]bool{}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "insira numero: ")
		if !scanner.Scan() {
			break
		}

		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			continue
		}

		if n == -1 {
			break
		}
		if n > 1 && !seen[n] {
			numbers = append(numbers, n)
			seen[n] = true
		}
	}

	return numbers
}

// properDivisors returns the divisors of n strictly between 1 and n, in
// ascending order. The slice is empty when n is prime.
func properDivisors(n int) []int {
	divisors := []int{}
	for i := 2; i < n; i++ {
		if n%i == 0 {
			divisors = append(divisors, i)
		}
	}
	return divisors
}

// printDivisors prints, for each number, its first and last proper
// divisor; primes report 1 and the number itself.
func printDivisors(out io.Writer, numbers []int) {
	for _, n := range numbers {
		divisors := properDivisors(n)
		if len(divisors) == 0 {
			divisors = []int{1, n}
		}
		fmt.Fprintf(out, "O número %d tem como divisores os numeros %d e %d \n",
			n, divisors[0], divisors[len(divisors)-1])
	}
}
