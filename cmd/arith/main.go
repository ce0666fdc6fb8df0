/**
 * Copyright 2021 The Arith Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/arithlang/arith/pkg/calc"
	"github.com/arithlang/arith/pkg/common"
)

type Option struct {
	Expr       string `short:"e" long:"expr" description:"[OPTIONAL] Evaluate a single expression and exit" required:"false"`
	ConfigFile string `short:"c" long:"config" description:"[OPTIONAL] Overrides the default config file path" required:"false"`
	Permissive bool   `long:"permissive" description:"[OPTIONAL] Use the permissive parse mode" required:"false"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		parser.WriteHelp(os.Stdout)
		return 1
	}

	log.SetFormatter(&log.JSONFormatter{})

	conf := common.NewDefaultConfig()
	configFilePath := common.DefaultConfigFilePath
	if opt.ConfigFile != "" {
		configFilePath = opt.ConfigFile
	}
	conf.LoadFromFile(configFilePath)
	if opt.Permissive {
		conf.ParseMode = common.ParseModePermissive
	}

	if err := conf.Validate(); err != nil {
		log.Errorf("arith::main::run; invalid config: %v", err)
		return 1
	}
	if lvl, err := log.ParseLevel(conf.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	c := calc.NewClient("repl", conf)

	if opt.Expr != "" {
		return evalOnce(c, conf, opt.Expr)
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd())
	reader := bufio.NewReader(os.Stdin)
	for {
		if interactive {
			fmt.Printf("calc> ")
		}

		line, err := reader.ReadString('\n')
		line = strings.Trim(line, " \n")
		if line == "exit" || (err != nil && line == "") {
			break
		}
		if line == "" {
			continue
		}

		evalOnce(c, conf, line)
		if err != nil {
			break
		}
	}

	return 0
}

// evalOnce evaluates a single expression and prints the token list and the
// "<input> = <result>" line.
func evalOnce(c *calc.Client, conf *common.Config, input string) int {
	res, err := c.Execute(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if !conf.HideTokens {
		fmt.Println(res.TokenLine())
	}
	fmt.Println(res.String())
	return 0
}
