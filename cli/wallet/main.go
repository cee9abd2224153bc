package main

import (
	"crypto/rand"
	"flag"
	"fmt"

	"github.com/alexdcox/ripple-go"
)

var log = ripple.Log()

var keyType string

func main() {
	flag.StringVar(&keyType, "keytype", string(ripple.KeyTypeSecp256k1), "The key type (secp256k1|ed25519)")
	flag.Parse()

	seed, err := ripple.GenerateSeed(rand.Reader)
	if err != nil {
		log.Fatal().Msgf("%+v", err)
	}

	kp, err := ripple.DeriveKeyPair(seed, ripple.KeyType(keyType))
	if err != nil {
		log.Fatal().Msgf("%+v", err)
	}

	account, err := kp.AccountID()
	if err != nil {
		log.Fatal().Msgf("%+v", err)
	}

	fmt.Println("")
	fmt.Println("Generated new ledger wallet:")
	fmt.Println("")
	fmt.Printf("key type:        %s\n", kp.Type)
	fmt.Printf("seed:            %s\n", seed)
	fmt.Printf("seed (hex):      %s\n", seed.Hex())
	fmt.Printf("private (hex):   %s\n", kp.Private)
	fmt.Printf("public (hex):    %s\n", kp.Public.Hex())
	fmt.Printf("public:          %s\n", kp.Public.AccountPublicString())
	fmt.Printf("account id:      %s\n", account.Hex())
	fmt.Printf("address:         %s\n", account)
	fmt.Println("")
}
