package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/f3rmion/schnorr/internal/config"
	"github.com/f3rmion/schnorr/internal/logging"
	"github.com/f3rmion/schnorr/modp"
	"github.com/f3rmion/schnorr/numfile"
	"github.com/f3rmion/schnorr/schnorr"
	"github.com/f3rmion/schnorr/session"
)

// errInvalidSignature is returned by verify for a well-formed signature
// that does not check out. It maps to exit status 1.
var errInvalidSignature = errors.New("signature is invalid")

// env is filled in by the root command before any subcommand runs.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	e := &env{}

	rootCmd := &cobra.Command{
		Use:           "schnorr",
		Short:         "Schnorr group generation, signing and verification",
		Long:          `Generate Schnorr groups, sign files and verify signatures stored one decimal integer per line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Logging.Mode, cfg.Logging.Level, cfg.Logging.File)
			if err != nil {
				return err
			}
			e.cfg, e.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("a command is required: group, sign or verify")
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().String("config", "", "path to a YAML configuration file")

	rootCmd.AddCommand(newGroupCmd(e), newSignCmd(e), newVerifyCmd(e))
	return rootCmd
}

func newGroupCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Generate a Schnorr group and write p, q and g",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			bits, _ := cmd.Flags().GetInt("bits")
			if bits == 0 {
				bits = e.cfg.Group.BitLength
			}

			e.logger.Info("generating group", zap.Int("bits", bits), zap.Int("certainty", e.cfg.Group.Certainty))
			g, err := modp.Generate(rand.Reader, bits, e.cfg.Group.Certainty, modp.WithLogger(e.logger))
			if err != nil {
				return err
			}
			if err := numfile.SaveGroup(out, g); err != nil {
				return err
			}

			e.logger.Info("group written",
				zap.String("path", out),
				zap.Int("p_bits", g.P().BitLen()),
				zap.String("cofactor", g.Cofactor().String()))
			fmt.Fprintf(cmd.OutOrStdout(), "Group written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().String("out", "group.txt", "where to write p, q and g")
	cmd.Flags().Int("bits", 0, "bit length of the subgroup order q (default from config)")
	return cmd
}

func newSignCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a file with a fresh key pair and write y, e and s",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groupPath, _ := cmd.Flags().GetString("group")
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")

			scheme, err := loadScheme(e.cfg, groupPath)
			if err != nil {
				return err
			}
			message, err := os.ReadFile(in)
			if err != nil {
				return err
			}

			signer, err := session.NewSigner(rand.Reader, scheme)
			if err != nil {
				return err
			}
			e.logger.Debug("ephemeral key pair generated", logging.Redacted("private_key"))

			envelope, err := signer.Sign(rand.Reader, message)
			if err != nil {
				return err
			}
			y := new(big.Int).SetBytes(envelope.PublicKey)
			if err := numfile.SaveSignature(out, y, envelope.Signature); err != nil {
				return err
			}

			e.logger.Info("message signed",
				zap.String("in", in),
				zap.String("out", out),
				zap.String("hash", scheme.Hasher().Name()))
			fmt.Fprintf(cmd.OutOrStdout(), "Signature written to %s\n", out)
			return nil
		},
	}
	cmd.Flags().String("group", "group.txt", "group file (p, q, g)")
	cmd.Flags().String("in", "", "file to sign")
	cmd.Flags().String("out", "signature.txt", "where to write y, e and s")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func newVerifyCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature file against a group and a message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groupPath, _ := cmd.Flags().GetString("group")
			in, _ := cmd.Flags().GetString("in")
			sigPath, _ := cmd.Flags().GetString("sig")

			scheme, err := loadScheme(e.cfg, groupPath)
			if err != nil {
				return err
			}
			message, err := os.ReadFile(in)
			if err != nil {
				return err
			}
			y, sig, err := numfile.LoadSignature(sigPath)
			if err != nil {
				return err
			}

			valid := false
			if pub, err := scheme.NewPublicKey(y.Bytes()); err == nil {
				valid = scheme.Verify(pub, message, sig)
			} else {
				e.logger.Debug("public key rejected", zap.Error(err))
			}

			e.logger.Info("signature checked", zap.String("in", in), zap.Bool("valid", valid))
			if !valid {
				fmt.Fprintln(cmd.OutOrStdout(), "Signature is invalid")
				return errInvalidSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signature is valid")
			return nil
		},
	}
	cmd.Flags().String("group", "group.txt", "group file (p, q, g)")
	cmd.Flags().String("in", "", "signed file")
	cmd.Flags().String("sig", "signature.txt", "signature file (y, e, s)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func loadScheme(cfg *config.Config, groupPath string) (*schnorr.Scheme, error) {
	g, err := numfile.LoadGroup(groupPath)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(cfg.Group.Certainty); err != nil {
		return nil, err
	}
	h, err := cfg.Hasher()
	if err != nil {
		return nil, err
	}
	return schnorr.NewWithHasher(g, h)
}
