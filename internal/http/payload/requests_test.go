package payload_test

import (
	"net/http/httptest"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"potshot/internal/http/payload"
)

const (
	testPlayer = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
	testDigest = "0x290decd9548b62a8d60345a988386fc84ba6bc95484008f6362f93160ef3e563"
)

var _ = Describe("CommitRequest", func() {
	var req payload.CommitRequest

	BeforeEach(func() {
		req = payload.CommitRequest{
			Player:    testPlayer,
			Digest:    testDigest,
			AmountWei: "500000000000000",
		}
	})

	It("accepts a well formed request", func() {
		Expect(req.Validate()).To(Succeed())
		Expect(req.Address()).To(Equal(common.HexToAddress(testPlayer)))
		Expect(req.DigestHash()).To(Equal(common.HexToHash(testDigest)))
		Expect(req.Amount().Dec()).To(Equal("500000000000000"))
	})

	It("rejects a short address", func() {
		req.Player = "0x123"
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("rejects a digest that is not 32 bytes", func() {
		req.Digest = "0xdeadbeef"
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("rejects a non-decimal amount", func() {
		req.AmountWei = "0.5 ether"
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("rejects missing fields", func() {
		Expect(payload.CommitRequest{}.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("RevealRequest", func() {
	It("decodes the secret bytes", func() {
		req := payload.RevealRequest{
			Player: testPlayer,
			Secret: "0x6c75636b79",
		}
		Expect(req.Validate()).To(Succeed())
		Expect(req.SecretBytes()).To(Equal([]byte("lucky")))
	})

	It("rejects an odd-length secret", func() {
		req := payload.RevealRequest{
			Player: testPlayer,
			Secret: "0xabc",
		}
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("rejects a secret without the 0x prefix", func() {
		req := payload.RevealRequest{
			Player: testPlayer,
			Secret: "6c75636b79",
		}
		Expect(req.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("SponsorRequest", func() {
	It("accepts a sponsor with a name and fee", func() {
		req := payload.SponsorRequest{
			Sponsor: testPlayer,
			Name:    "Lucky Llama Labs",
			URL:     "https://llama.example",
			FeeWei:  "100000000000000",
		}
		Expect(req.Validate()).To(Succeed())
	})

	It("rejects an empty name", func() {
		req := payload.SponsorRequest{
			Sponsor: testPlayer,
			FeeWei:  "100000000000000",
		}
		Expect(req.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	It("decodes and validates in one pass", func() {
		body := strings.NewReader(`{"player":"` + testPlayer + `","digest":"` + testDigest + `","amountWei":"5"}`)
		r := httptest.NewRequest("POST", "/shot/commit", body)

		var req payload.CommitRequest
		Expect(dv.DecodeAndValidateJSONPayload(r, &req)).To(Succeed())
		Expect(req.Player).To(Equal(testPlayer))
	})

	It("rejects unknown fields", func() {
		body := strings.NewReader(`{"player":"` + testPlayer + `","surprise":true}`)
		r := httptest.NewRequest("POST", "/shot/claim", body)

		var req payload.ClaimRequest
		Expect(dv.DecodeAndValidateJSONPayload(r, &req)).NotTo(Succeed())
	})

	It("surfaces validation failures", func() {
		body := strings.NewReader(`{"player":"nope"}`)
		r := httptest.NewRequest("POST", "/shot/claim", body)

		var req payload.ClaimRequest
		err := dv.DecodeAndValidateJSONPayload(r, &req)
		Expect(err).To(MatchError(ContainSubstring("validating payload")))
	})
})
