package main

import (
	"flag"
	"fmt"
	"log"

	"paylink.backend/internal/domain/entities"
	"paylink.backend/pkg/crypto"
)

func main() {
	count := flag.Int("n", 1, "number of claim codes to generate")
	flag.Parse()

	if *count <= 0 {
		log.Fatalf("invalid count: %d (must be positive)", *count)
	}

	for i := 0; i < *count; i++ {
		code, err := crypto.GenerateRandomToken(entities.ClaimCodeLength / 2)
		if err != nil {
			log.Fatalf("failed to generate claim code: %v", err)
		}
		fmt.Println(code)
	}
}
