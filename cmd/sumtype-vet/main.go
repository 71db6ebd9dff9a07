// Command sumtype-vet runs the sealed-interface check as a vet tool:
//
//	go vet -vettool=$(which sumtype-vet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/funvibe/sumtype/internal/lint"
)

func main() {
	singlechecker.Main(lint.Analyzer)
}
