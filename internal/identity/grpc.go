package identity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	pb "github.com/dmitrijs2005/authkeeper/internal/proto"
)

// watchRetryInterval is the delay before re-establishing a broken
// auth event stream.
const watchRetryInterval = 3 * time.Second

// GRPCBackend implements Backend over the identity service's gRPC API.
// It carries the access token on outbound calls, transparently refreshes
// it once on expiry, and forwards the server's Watch stream into a local
// event channel.
type GRPCBackend struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.IdentityServiceClient
	log         logging.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string

	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup
}

func NewGRPCBackend(endpointURL string, log logging.Logger) (*GRPCBackend, error) {
	b := &GRPCBackend{
		endpointURL: endpointURL,
		log:         log,
		events:      make(chan Event, 16),
		done:        make(chan struct{}),
	}

	conn, err := grpc.NewClient(endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(b.accessTokenInterceptor))
	if err != nil {
		return nil, err
	}
	b.conn = conn
	b.client = pb.NewIdentityServiceClient(conn)

	b.wg.Add(1)
	go b.watchLoop()

	return b, nil
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (b *GRPCBackend) tokens() (access, refresh string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.accessToken, b.refreshToken
}

func (b *GRPCBackend) setTokens(access, refresh string) {
	b.mu.Lock()
	b.accessToken = access
	b.refreshToken = refresh
	b.mu.Unlock()
}

// accessTokenInterceptor attaches the current access token to every unary
// call. When the server rejects the call with an expired-token status and a
// refresh token is held, it refreshes the pair once and re-issues the call.
func (b *GRPCBackend) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	access, refresh := b.tokens()
	ctx = withAccessToken(ctx, access)

	err := invoker(ctx, method, req, reply, cc, opts...)
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() != codes.Unauthenticated {
		return err
	}
	if st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, err := b.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if err != nil {
		if rst, ok := status.FromError(err); ok && rst.Message() == common.ErrRefreshTokenExpired.Error() {
			b.setTokens("", "")
			return common.ErrRefreshTokenExpired
		}
		return err
	}

	b.setTokens(resp.AccessToken, resp.RefreshToken)
	b.emit(Event{Type: EventTokenRefreshed, Session: b.sessionFromTokens(resp.AccessToken, resp.RefreshToken, resp.ExpiresAt)})

	ctx = withAccessToken(ctx, resp.AccessToken)
	return invoker(ctx, method, req, reply, cc, opts...)
}

// CurrentSession asks the backend for the session bound to the held token.
// A missing session is (nil, nil), not an error.
func (b *GRPCBackend) CurrentSession(ctx context.Context) (*Session, error) {
	resp, err := b.client.GetSession(ctx, &pb.GetSessionRequest{})
	if err != nil {
		st, ok := status.FromError(err)
		if ok && (st.Code() == codes.NotFound || st.Code() == codes.Unauthenticated) {
			return nil, nil
		}
		return nil, b.mapError(err)
	}
	if resp.Session == nil || resp.Session.AccessToken == "" {
		return nil, nil
	}
	return b.sessionFromProto(resp.Session), nil
}

// SignInWithPassword validates credentials against the backend and stores
// the issued token pair for subsequent calls.
func (b *GRPCBackend) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	resp, err := b.client.SignInWithPassword(ctx, &pb.SignInRequest{Email: email, Password: password})
	if err != nil {
		st, ok := status.FromError(err)
		if ok && (st.Code() == codes.Unauthenticated || st.Code() == codes.InvalidArgument || st.Code() == codes.PermissionDenied) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, b.mapError(err)
	}
	if resp.Session == nil {
		return nil, common.ErrorInternal
	}

	b.setTokens(resp.Session.AccessToken, resp.Session.RefreshToken)
	return b.sessionFromProto(resp.Session), nil
}

// SignOut revokes the session on the backend. Local token state is dropped
// even when the call fails, so a subsequent CurrentSession is anonymous.
func (b *GRPCBackend) SignOut(ctx context.Context) error {
	_, err := b.client.SignOut(ctx, &pb.SignOutRequest{})
	b.setTokens("", "")
	if err != nil {
		return b.mapError(err)
	}
	return nil
}

// Events returns the live auth event channel. The channel stops carrying
// events after Close; it is never closed so late readers simply block.
func (b *GRPCBackend) Events() <-chan Event {
	return b.events
}

func (b *GRPCBackend) Close() error {
	close(b.done)
	err := b.conn.Close()
	b.wg.Wait()
	return err
}

// watchLoop keeps a Watch stream open against the backend and forwards its
// events, reconnecting after transient failures until Close.
func (b *GRPCBackend) watchLoop() {
	defer b.wg.Done()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		<-b.done
		cancel()
	}()

	for {
		select {
		case <-b.done:
			return
		default:
		}

		stream, err := b.client.Watch(ctx, &pb.WatchRequest{})
		if err != nil {
			b.log.Warn(ctx, "auth event stream unavailable", "error", err)
			select {
			case <-b.done:
				return
			case <-time.After(watchRetryInterval):
			}
			continue
		}

		for {
			ev, err := stream.Recv()
			if err != nil {
				select {
				case <-b.done:
					return
				case <-time.After(watchRetryInterval):
				}
				break
			}

			out := Event{Type: EventType(ev.Type)}
			if ev.Session != nil {
				out.Session = b.sessionFromProto(ev.Session)
				b.setTokens(ev.Session.AccessToken, ev.Session.RefreshToken)
			}
			if out.Type == EventSignedOut {
				b.setTokens("", "")
			}
			b.emit(out)
		}
	}
}

// emit delivers an event without blocking the stream reader; if the consumer
// has fallen this far behind, the oldest pending event is dropped first.
func (b *GRPCBackend) emit(ev Event) {
	select {
	case b.events <- ev:
	default:
		select {
		case <-b.events:
		default:
		}
		select {
		case b.events <- ev:
		default:
		}
	}
}

// sessionFromProto converts a wire session, falling back to the token's own
// unverified claims for the principal id and expiry when the server omitted
// them. Verification stays with the backend.
func (b *GRPCBackend) sessionFromProto(s *pb.Session) *Session {
	out := &Session{
		UserID:       s.UserId,
		Email:        s.Email,
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
	}
	if s.ExpiresAt > 0 {
		out.ExpiresAt = time.Unix(s.ExpiresAt, 0)
	}

	if out.UserID != "" && !out.ExpiresAt.IsZero() {
		return out
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, claims); err != nil {
		return out
	}
	if out.UserID == "" {
		if sub, err := claims.GetSubject(); err == nil {
			out.UserID = sub
		}
	}
	if out.ExpiresAt.IsZero() {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			out.ExpiresAt = exp.Time
		}
	}
	return out
}

func (b *GRPCBackend) sessionFromTokens(access, refresh string, expiresAt int64) *Session {
	return b.sessionFromProto(&pb.Session{AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt})
}

func (b *GRPCBackend) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return common.ErrorUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return common.ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
