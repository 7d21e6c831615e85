// internal/domain/customer/synthetic.go
package customer

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Placeholder domains mark synthesized contact data so downstream code can
// tell real input from filler. Leads get @temp.com; self-registrations that
// omitted an email get @aixos-placeholder.com.
const (
	leadEmailDomain        = "temp.com"
	placeholderEmailDomain = "aixos-placeholder.com"
)

// LeadEmail synthesizes a unique placeholder address for an auto-created
// lead. The millisecond suffix is collision-avoidance, not a secret.
func LeadEmail() string {
	return fmt.Sprintf("lead-%d@%s", time.Now().UnixMilli(), leadEmailDomain)
}

// PlaceholderEmail synthesizes a unique address for a self-registration that
// supplied no email.
func PlaceholderEmail() string {
	return fmt.Sprintf("no-email-%d-%d@%s", time.Now().UnixMilli(), rand.Intn(1000), placeholderEmailDomain)
}

// IsSyntheticEmail reports whether the address was synthesized by this
// system rather than supplied by the customer.
func IsSyntheticEmail(email string) bool {
	return strings.HasSuffix(email, "@"+leadEmailDomain) ||
		strings.HasSuffix(email, "@"+placeholderEmailDomain)
}
