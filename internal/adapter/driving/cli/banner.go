package cli

import (
	"fmt"
	"io"

	"github.com/dskyberg/instance-count/pkg/version"
	"github.com/fatih/color"
)

const banner = `
  ___         _                          ___              _
 |_ _|_ _  __| |_ __ _ _ _  __ ___      / __|___ _  _ _ _| |_
  | || ' \(_-<  _/ _' | ' \/ _/ -_)    | (__/ _ \ || | ' \  _|
 |___|_||_/__/\__\__,_|_||_\__\___|     \___\___/\_,_|_||_\__|
`

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(w io.Writer) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Fprintln(w, red(banner))
	fmt.Fprintln(w, blue(fmt.Sprintf("Instance Count CLI (v%s)", version.FormatVersion())))
}
