// Package domain contains the core records of the competition registry:
// athletes, categories and training centers, together with the field rules
// they must satisfy. It is independent of any storage or transport concern.
package domain
