package main

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/alexdcox/ripple-go"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

type tokenResult struct {
	Type    string          `json:"type"`
	Tag     byte            `json:"tag"`
	Payload ripple.HexBytes `json:"payload"`
	Token   string          `json:"token"`
	Account string          `json:"account,omitempty"`
}

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Encode a hex payload as a token",
		ArgsUsage: "HEX",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "type",
				Aliases:  []string{"t"},
				Usage:    "Token type (AccountID, NodePublic, FamilySeed, ...)",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			typ, err := ripple.ParseTokenType(c.String("type"))
			if err != nil {
				return err
			}
			payload, err := ripple.DecodeHex(c.Args().First())
			if err != nil {
				return err
			}
			if len(payload) == 0 {
				return errors.New("payload must not be empty")
			}
			return printResult(c, result(typ, payload))
		},
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode a token of a known type",
		ArgsUsage: "TOKEN",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "type",
				Aliases:  []string{"t"},
				Usage:    "Expected token type",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			typ, err := ripple.ParseTokenType(c.String("type"))
			if err != nil {
				return err
			}
			payload, err := ripple.DecodeToken(typ, c.Args().First())
			if err != nil {
				return err
			}
			return printResult(c, result(typ, payload))
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Decode a token and report which type it carries",
		ArgsUsage: "TOKEN",
		Action: func(c *cli.Context) error {
			typ, payload, err := ripple.DecodeAnyToken(c.Args().First())
			if err != nil {
				return err
			}
			return printResult(c, result(typ, payload))
		},
	}
}

func walletCommand() *cli.Command {
	return &cli.Command{
		Name:  "wallet",
		Usage: "Propose a wallet from a passphrase, a seed or fresh entropy",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "passphrase", Usage: "Derive the seed from a passphrase"},
			&cli.StringFlag{Name: "seed", Usage: "Use an existing s... seed"},
			&cli.StringFlag{Name: "key-type", Usage: "secp256k1 or ed25519", Value: string(ripple.KeyTypeSecp256k1)},
			&cli.StringFlag{Name: "out", Usage: "Also write the wallet json to this file"},
		},
		Action: func(c *cli.Context) (err error) {
			var seed ripple.Seed
			switch {
			case c.String("seed") != "":
				seed, err = ripple.ParseSeed(c.String("seed"))
			case c.String("passphrase") != "":
				seed = ripple.SeedFromPassphrase(c.String("passphrase"))
			default:
				seed, err = ripple.GenerateSeed(rand.Reader)
			}
			if err != nil {
				return
			}

			w, err := ripple.NewWalletProposal(seed, ripple.KeyType(c.String("key-type")))
			if err != nil {
				return
			}

			if out := c.String("out"); out != "" {
				if err = ripple.SaveWalletProposal(out, w); err != nil {
					return
				}
			}

			return printJson(c, w)
		},
	}
}

func validatorKeysCommand() *cli.Command {
	return &cli.Command{
		Name:      "validator-keys",
		Usage:     "Validate a validation_create key file, or create keys with --passphrase",
		ArgsUsage: "[FILE]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "passphrase", Usage: "Derive validator keys from a passphrase"},
		},
		Action: func(c *cli.Context) (err error) {
			var keys ripple.NodeKeys
			if passphrase := c.String("passphrase"); passphrase != "" {
				keys, err = ripple.NodeKeysFromSeed(ripple.SeedFromPassphrase(passphrase))
			} else if c.Args().Len() == 1 {
				keys, err = ripple.LoadNodeKeys(c.Args().First())
			} else {
				return errors.New("expected a key file or --passphrase")
			}
			if err != nil {
				return
			}

			if err = keys.Validate(); err != nil {
				return
			}

			log.Debug().Msgf("validator keys for %s are consistent", keys.ValidationPublicKey)

			return printJson(c, keys)
		},
	}
}

func result(typ ripple.TokenType, payload []byte) tokenResult {
	r := tokenResult{
		Type:    typ.String(),
		Tag:     byte(typ),
		Payload: payload,
		Token:   ripple.EncodeToken(typ, payload),
	}
	switch typ {
	case ripple.TokenTypeNodePublic, ripple.TokenTypeAccountPublic:
		if account, err := ripple.PublicKey(payload).AccountID(); err == nil {
			r.Account = account.String()
		}
	}
	return r
}

func printResult(c *cli.Context, r tokenResult) error {
	if c.Bool("json") {
		return printJson(c, r)
	}
	w := c.App.Writer
	fmt.Fprintf(w, "type:            %s (%d)\n", r.Type, r.Tag)
	fmt.Fprintf(w, "payload (hex):   %s\n", r.Payload)
	fmt.Fprintf(w, "token:           %s\n", r.Token)
	if r.Account != "" {
		fmt.Fprintf(w, "account:         %s\n", r.Account)
	}
	return nil
}

func printJson(c *cli.Context, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	_, err = fmt.Fprintln(c.App.Writer, string(out))
	return err
}
