package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mahdiidarabi/ed25519-sig/pkg/ed25519sig"
)

func main() {
	var (
		keygen     = flag.Bool("keygen", false, "Generate a key pair (random seed unless --seed is given)")
		doSign     = flag.Bool("sign", false, "Sign a message (requires --seed and --message or --message-hex)")
		doVerify   = flag.Bool("verify", false, "Verify a signature (requires --public-key, --signature, and a message)")
		batch      = flag.Bool("batch", false, "Batch-verify a signature file (requires --signatures)")
		seedHex    = flag.String("seed", "", "Seed in hex format (64 chars)")
		message    = flag.String("message", "", "Message as a literal string")
		messageHex = flag.String("message-hex", "", "Message in hex format (overrides --message)")
		noiseHex   = flag.String("noise", "", "Optional signing noise in hex format (64 chars); makes signatures non-deterministic")
		publicKey  = flag.String("public-key", "", "Public key in hex format (64 chars)")
		signature  = flag.String("signature", "", "Signature in hex format (128 chars)")
		sigFile    = flag.String("signatures", "", "Path to batch signature file (JSON or CSV)")
		format     = flag.String("format", "json", "Batch file format (json or csv)")
	)
	flag.Parse()

	switch {
	case *keygen:
		runKeygen(*seedHex)
	case *doSign:
		runSign(*seedHex, *message, *messageHex, *noiseHex)
	case *doVerify:
		runVerify(*publicKey, *signature, *message, *messageHex)
	case *batch:
		runBatch(*sigFile, *format)
	default:
		fmt.Fprintf(os.Stderr, "Error: Must specify --keygen, --sign, --verify, or --batch\n")
		flag.Usage()
		os.Exit(1)
	}
}

func runKeygen(seedHex string) {
	var kp ed25519sig.KeyPair
	if seedHex != "" {
		kp = ed25519sig.NewKeyPairFromSeed(parseSeed(seedHex))
	} else {
		var err error
		kp, err = ed25519sig.GenerateKeyPair(nil)
		if err != nil {
			fatalf("Error: %v\n", err)
		}
	}

	seed := kp.Seed()
	pub := kp.Public()
	fmt.Printf("Seed:       %x\n", seed[:])
	fmt.Printf("Public key: %x\n", pub[:])
}

func runSign(seedHex, message, messageHex, noiseHex string) {
	if seedHex == "" {
		fatalf("Error: --seed is required for --sign\n")
	}
	kp := ed25519sig.NewKeyPairFromSeed(parseSeed(seedHex))
	msg := resolveMessage(message, messageHex)

	var sig ed25519sig.Signature
	if noiseHex != "" {
		var noise [ed25519sig.NoiseSize]byte
		decodeFixedHex(noise[:], noiseHex, "noise")
		sig = ed25519sig.SignWithNoise(msg, kp, noise)
	} else {
		sig = ed25519sig.Sign(msg, kp)
	}
	fmt.Printf("Signature: %x\n", sig[:])
}

func runVerify(publicKeyHex, signatureHex, message, messageHex string) {
	if publicKeyHex == "" || signatureHex == "" {
		fatalf("Error: --public-key and --signature are required for --verify\n")
	}
	var pub ed25519sig.PublicKey
	decodeFixedHex(pub[:], publicKeyHex, "public key")
	var sig ed25519sig.Signature
	decodeFixedHex(sig[:], signatureHex, "signature")
	msg := resolveMessage(message, messageHex)

	if err := ed25519sig.Verify(sig, msg, pub); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Signature valid")
}

func runBatch(sigFile, format string) {
	if sigFile == "" {
		fatalf("Error: --signatures is required for --batch\n")
	}

	var parser ed25519sig.BatchParser
	if format == "csv" {
		parser = &ed25519sig.CSVParser{}
	} else {
		parser = &ed25519sig.JSONParser{}
	}
	client := ed25519sig.NewClient().WithParser(parser)

	elements, err := client.VerifyBatchFile(sigFile)
	if err != nil {
		if elements != nil {
			fmt.Fprintf(os.Stderr, "Batch of %d rejected: %v\n", len(elements), err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("All %d signatures valid\n", len(elements))
}

func resolveMessage(message, messageHex string) []byte {
	if messageHex != "" {
		msg, err := hex.DecodeString(strings.TrimPrefix(messageHex, "0x"))
		if err != nil {
			fatalf("Error: invalid --message-hex: %v\n", err)
		}
		return msg
	}
	return []byte(message)
}

func parseSeed(seedHex string) ed25519sig.Seed {
	var seed ed25519sig.Seed
	decodeFixedHex(seed[:], seedHex, "seed")
	return seed
}

func decodeFixedHex(dst []byte, s, name string) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		fatalf("Error: invalid %s hex: %v\n", name, err)
	}
	if len(raw) != len(dst) {
		fatalf("Error: %s must be %d bytes, got %d\n", name, len(dst), len(raw))
	}
	copy(dst, raw)
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
