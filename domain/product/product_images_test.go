package product

import (
	"bytes"
	"io"
	"io/ioutil"
	"shopfront/account"
	"shopfront/bizerror"
	"shopfront/client/s3"
	"shopfront/session"
	"testing"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	. "github.com/onsi/gomega"
)

func TestDetailProductImage(t *testing.T) {
	RegisterTestingT(t)

	t.Run("should read the object of the product key", func(t *testing.T) {
		s3.GetObjectFunc = func(key string, s *session.Session, o ...oss.Option) (io.ReadCloser, error) {
			return ioutil.NopCloser(bytes.NewReader([]byte(key + "=>image-data"))), nil
		}

		data, err := DetailProductImage(123, &session.Session{})
		Expect(err).To(BeNil())
		Expect(string(data)).To(Equal("product-images/123.png=>image-data"))
	})

	t.Run("missing object should map to not found", func(t *testing.T) {
		s3.GetObjectFunc = func(key string, s *session.Session, o ...oss.Option) (io.ReadCloser, error) {
			return nil, oss.ServiceError{Code: "NoSuchKey"}
		}

		data, err := DetailProductImage(123, &session.Session{})
		Expect(data).To(BeNil())
		Expect(err).To(Equal(bizerror.ErrNotFound))
	})
}

func TestCreateProductImage(t *testing.T) {
	RegisterTestingT(t)

	t.Run("only admin can upload product images", func(t *testing.T) {
		err := CreateProductImage(123, bytes.NewReader([]byte("image-data")), &session.Session{})
		Expect(err).To(Equal(bizerror.ErrForbidden))
	})

	t.Run("should write the object under the product key", func(t *testing.T) {
		var savedKey string
		buff := &bytes.Buffer{}
		s3.PutObjectFunc = func(key string, r io.Reader, s *session.Session, o ...oss.Option) error {
			savedKey = key
			_, err := io.Copy(buff, r)
			return err
		}

		sec := &session.Session{Perms: []string{account.SystemAdminPermission.ID}}
		Expect(CreateProductImage(123, bytes.NewReader([]byte("image-data")), sec)).To(BeNil())
		Expect(savedKey).To(Equal("product-images/123.png"))
		Expect(buff.String()).To(Equal("image-data"))
	})
}
