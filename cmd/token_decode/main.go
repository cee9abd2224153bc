package main

import (
	"flag"
	"fmt"
	"strings"

	. "github.com/alexdcox/ripple-go"
	"github.com/pkg/errors"
)

var log = Log()

var token string

func main() {
	flag.StringVar(&token, "token", "", "The base58 token to decode")
	flag.Parse()

	if token == "" {
		fmt.Println("usage: token_decode --token BASE58")
		return
	}

	token = strings.Trim(token, " \"")

	fmt.Printf("\ndecoding token:  %s\n\n", token)

	for _, typ := range TokenTypes() {
		payload, err := DecodeToken(typ, token)

		fmt.Printf("type:            %s (%d)\n", typ, byte(typ))

		switch {
		case errors.Is(err, ErrTypeMismatch):
			fmt.Print("wrong type\n\n")
		case err != nil:
			log.Fatal().Msgf("%+v", err)
		default:
			reencoded := EncodeToken(typ, payload)
			if reencoded != token {
				log.Fatal().Msgf("re-encoding produced %s", reencoded)
			}

			fmt.Printf("payload (hex):   %X\n", payload)
			fmt.Printf("payload length:  %d\n", len(payload))
			describe(typ, payload)
			fmt.Println("")
		}
	}
}

func describe(typ TokenType, payload []byte) {
	switch typ {
	case TokenTypeNodePublic, TokenTypeAccountPublic:
		pub := PublicKey(payload)
		keyType, err := pub.KeyType()
		if err != nil {
			fmt.Printf("key:             %v\n", err)
			return
		}
		account, err := pub.AccountID()
		if err != nil {
			log.Fatal().Msgf("%+v", err)
		}
		fmt.Printf("key type:        %s\n", keyType)
		fmt.Printf("account:         %s\n", account)
	case TokenTypeFamilySeed:
		if len(payload) == SeedSize {
			fmt.Printf("seed (hex):      %X\n", payload)
		}
	}
}
