package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/codeXAI06/ReliefLink/store"
)

func (s *Server) apikeyAuthentication(apikey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("API-KEY") != apikey {
			abortWithEncoding(c, http.StatusUnauthorized, errorInvalidAPIKey)
			return
		}
		c.Next()
	}
}

// recognizeHelperMiddleware loads the helper named by the route and
// refreshes the last-active timestamp. Handlers downstream read the
// helper out of the context.
func (s *Server) recognizeHelperMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		helperID, err := uuid.Parse(c.Param("helperID"))
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}

		helper, err := s.store.GetHelper(helperID)
		if err != nil {
			if err == store.ErrHelperNotExist {
				abortWithEncoding(c, http.StatusNotFound, errorHelperNotFound, err)
			} else {
				abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
			}
			return
		}

		if err := s.store.TouchHelper(helper.ID); err != nil {
			log.WithError(err).Error("touch helper")
		}

		c.Set("helper", helper)
		c.Next()
	}
}
