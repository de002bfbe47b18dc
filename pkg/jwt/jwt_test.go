package jwt_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"potshot/pkg/jwt"
)

var _ = Describe("JWTService", func() {
	var (
		service *jwt.JWTService
		info    jwt.TokenInfo
	)

	BeforeEach(func() {
		service = jwt.NewJWTService([]byte("test-secret"))
		info = jwt.TokenInfo{
			Operator:   "admin",
			Subject:    "potshot-admin",
			Expiration: time.Hour,
		}
	})

	It("round-trips operator claims", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())
		Expect(signed).NotTo(BeEmpty())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["operator"]).To(Equal("admin"))
		Expect(claims["sub"]).To(Equal("potshot-admin"))
	})

	When("the token is signed with a different secret", func() {
		It("rejects it", func() {
			other := jwt.NewJWTService([]byte("other-secret"))
			signed, err := other.Sign(other.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
		})
	})

	When("the token has expired", func() {
		It("rejects it", func() {
			info.Expiration = -time.Hour
			signed, err := service.Sign(service.Generate(info))
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Validate(signed)
			Expect(err).To(HaveOccurred())
		})
	})

	When("the token is garbage", func() {
		It("rejects it", func() {
			_, err := service.Validate("not-a-token")
			Expect(err).To(MatchError(jwt.ErrTokenNotValid))
		})
	})
})
