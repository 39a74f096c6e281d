package integrations_test

import (
	"fmt"

	"github.com/matzehuels/scholarnet/pkg/integrations"
)

func ExampleURLEncode() {
	fmt.Println(integrations.URLEncode("Zeshan Khan"))
	fmt.Println(integrations.URLEncode("Müller & Co"))
	// Output:
	// Zeshan+Khan
	// M%C3%BCller+%26+Co
}

func Example_errors() {
	fmt.Println("ErrNotFound:", integrations.ErrNotFound)
	fmt.Println("ErrNetwork:", integrations.ErrNetwork)
	fmt.Println("ErrRateLimited:", integrations.ErrRateLimited)
	// Output:
	// ErrNotFound: resource not found
	// ErrNetwork: network error
	// ErrRateLimited: rate limited
}
