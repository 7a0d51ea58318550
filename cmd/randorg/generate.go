package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Nick-Seinsche/randomorg"
)

const defaultCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	intN      int
	intMin    int64
	intMax    int64
	intUnique bool
	intBase   int

	seqN      int
	seqLength int
	seqMin    int64
	seqMax    int64
	seqUnique bool

	decN      int
	decPlaces int
	decUnique bool

	gaussN      int
	gaussMean   float64
	gaussStddev float64
	gaussDigits int

	strN       int
	strLength  int
	strCharset string
	strUnique  bool

	uuidN int

	blobN      int
	blobSize   int
	blobFormat string
)

var intCmd = &cobra.Command{
	Use:   "int",
	Short: "Generate random integers",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		values, err := client.GenerateIntegers(cmd.Context(), randomorg.IntegerParams{
			N: intN, Min: intMin, Max: intMax, Unique: intUnique, Base: intBase,
		})
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Println(v)
		}
		return nil
	},
}

var seqCmd = &cobra.Command{
	Use:   "seq",
	Short: "Generate random integer sequences",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		seqs, err := client.GenerateIntegerSequences(cmd.Context(), randomorg.SequenceParams{
			N: seqN, Length: seqLength, Min: seqMin, Max: seqMax, Unique: seqUnique,
		})
		if err != nil {
			return err
		}
		for _, seq := range seqs {
			parts := make([]string, len(seq))
			for i, v := range seq {
				parts[i] = fmt.Sprint(v)
			}
			fmt.Println(strings.Join(parts, " "))
		}
		return nil
	},
}

var decimalCmd = &cobra.Command{
	Use:   "decimal",
	Short: "Generate random decimal fractions from [0,1)",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		values, err := client.GenerateDecimalFractions(cmd.Context(), randomorg.DecimalFractionParams{
			N: decN, DecimalPlaces: decPlaces, Unique: decUnique,
		})
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Println(v.String())
		}
		return nil
	},
}

var gaussianCmd = &cobra.Command{
	Use:   "gaussian",
	Short: "Generate random numbers from a Gaussian distribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		values, err := client.GenerateGaussians(cmd.Context(), randomorg.GaussianParams{
			N: gaussN, Mean: gaussMean, StandardDeviation: gaussStddev, SignificantDigits: gaussDigits,
		})
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Println(v)
		}
		return nil
	},
}

var stringCmd = &cobra.Command{
	Use:   "string",
	Short: "Generate random strings",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		values, err := client.GenerateStrings(cmd.Context(), randomorg.StringParams{
			N: strN, Length: strLength, Characters: strCharset, Unique: strUnique,
		})
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Println(v)
		}
		return nil
	},
}

var uuidCmd = &cobra.Command{
	Use:   "uuid",
	Short: "Generate random version-4 UUIDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		values, err := client.GenerateUUIDs(cmd.Context(), uuidN)
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Println(v)
		}
		return nil
	},
}

var blobCmd = &cobra.Command{
	Use:   "blob",
	Short: "Generate random binary blobs",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		blobs, err := client.GenerateBlobs(cmd.Context(), randomorg.BlobParams{
			N: blobN, Size: blobSize, Format: blobFormat,
		})
		if err != nil {
			return err
		}
		for _, b := range blobs {
			if blobFormat == randomorg.BlobFormatHex {
				fmt.Println(hex.EncodeToString(b))
			} else {
				fmt.Println(base64.StdEncoding.EncodeToString(b))
			}
		}
		return nil
	},
}

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show remaining quota for the API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		u, err := client.GetUsage(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("status:         %s\n", u.Status)
		if !u.CreationTime.IsZero() {
			fmt.Printf("key created:    %s\n", u.CreationTime.Format("2006-01-02 15:04:05 MST"))
		}
		fmt.Printf("bits left:      %d\n", u.BitsLeft)
		fmt.Printf("requests left:  %d\n", u.RequestsLeft)
		fmt.Printf("total bits:     %d\n", u.TotalBits)
		fmt.Printf("total requests: %d\n", u.TotalRequests)
		return nil
	},
}

func init() {
	intCmd.Flags().IntVarP(&intN, "count", "n", 1, "how many integers")
	intCmd.Flags().Int64Var(&intMin, "min", 1, "minimum value (inclusive)")
	intCmd.Flags().Int64Var(&intMax, "max", 100, "maximum value (inclusive)")
	intCmd.Flags().BoolVar(&intUnique, "unique", false, "sample without replacement")
	intCmd.Flags().IntVar(&intBase, "base", 10, "base: 2, 8, 10 or 16")

	seqCmd.Flags().IntVarP(&seqN, "count", "n", 1, "how many sequences")
	seqCmd.Flags().IntVar(&seqLength, "length", 6, "integers per sequence")
	seqCmd.Flags().Int64Var(&seqMin, "min", 1, "minimum value (inclusive)")
	seqCmd.Flags().Int64Var(&seqMax, "max", 49, "maximum value (inclusive)")
	seqCmd.Flags().BoolVar(&seqUnique, "unique", false, "sample without replacement within each sequence")

	decimalCmd.Flags().IntVarP(&decN, "count", "n", 1, "how many fractions")
	decimalCmd.Flags().IntVar(&decPlaces, "places", 8, "decimal places per fraction")
	decimalCmd.Flags().BoolVar(&decUnique, "unique", false, "sample without replacement")

	gaussianCmd.Flags().IntVarP(&gaussN, "count", "n", 1, "how many numbers")
	gaussianCmd.Flags().Float64Var(&gaussMean, "mean", 0, "distribution mean")
	gaussianCmd.Flags().Float64Var(&gaussStddev, "stddev", 1, "distribution standard deviation")
	gaussianCmd.Flags().IntVar(&gaussDigits, "digits", 6, "significant digits")

	stringCmd.Flags().IntVarP(&strN, "count", "n", 1, "how many strings")
	stringCmd.Flags().IntVar(&strLength, "length", 16, "string length")
	stringCmd.Flags().StringVar(&strCharset, "charset", defaultCharset, "characters to draw from")
	stringCmd.Flags().BoolVar(&strUnique, "unique", false, "sample without replacement")

	uuidCmd.Flags().IntVarP(&uuidN, "count", "n", 1, "how many UUIDs")

	blobCmd.Flags().IntVarP(&blobN, "count", "n", 1, "how many blobs")
	blobCmd.Flags().IntVar(&blobSize, "size", 256, "blob size in bits (divisible by 8)")
	blobCmd.Flags().StringVar(&blobFormat, "format", randomorg.BlobFormatBase64, `output encoding: "base64" or "hex"`)

	rootCmd.AddCommand(intCmd, seqCmd, decimalCmd, gaussianCmd, stringCmd, uuidCmd, blobCmd, usageCmd)
}
