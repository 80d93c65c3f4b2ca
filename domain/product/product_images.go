package product

import (
	"io"
	"io/ioutil"
	"shopfront/account"
	"shopfront/bizerror"
	"shopfront/client/s3"
	"shopfront/session"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/fundwit/go-commons/types"
)

func DetailProductImage(id types.ID, s *session.Session) ([]byte, error) {
	r, err := s3.GetObjectFunc("product-images/"+id.String()+".png", s)
	if err != nil {
		if serErr, ok := err.(oss.ServiceError); ok && serErr.Code == "NoSuchKey" {
			return nil, bizerror.ErrNotFound
		}
		return nil, err
	}
	defer r.Close()
	return ioutil.ReadAll(r)
}

func CreateProductImage(id types.ID, r io.Reader, s *session.Session) error {
	if !s.Perms.HasRole(account.SystemAdminPermission.ID) {
		return bizerror.ErrForbidden
	}

	return s3.PutObjectFunc("product-images/"+id.String()+".png", r, s)
}
