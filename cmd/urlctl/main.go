// Утилита администрирования коротких ссылок. Работает с тем же хранилищем и конфигурацией (ENV), что и сервер.
package main

import (
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
