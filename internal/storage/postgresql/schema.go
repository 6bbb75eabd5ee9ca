package postgresql

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	profile_image TEXT
);

CREATE TABLE IF NOT EXISTS backusers (
	id SERIAL PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	profileimage TEXT,
	darkmode BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS categories (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS blog_posts (
	id BIGSERIAL PRIMARY KEY,
	pimage TEXT NOT NULL DEFAULT '',
	pname TEXT NOT NULL,
	aname TEXT NOT NULL DEFAULT '',
	img_alt TEXT NOT NULL DEFAULT '',
	img_title TEXT NOT NULL DEFAULT '',
	pdesc TEXT NOT NULL DEFAULT '',
	cname TEXT NOT NULL DEFAULT '',
	up_date TIMESTAMPTZ,
	stime TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	views INT NOT NULL DEFAULT 0,
	likes INT NOT NULL DEFAULT 0,
	is_read BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS blog_posts_stime_idx ON blog_posts (stime DESC);
CREATE INDEX IF NOT EXISTS blog_posts_cname_idx ON blog_posts (cname);

CREATE TABLE IF NOT EXISTS comments (
	id BIGSERIAL PRIMARY KEY,
	post_id BIGINT NOT NULL REFERENCES blog_posts(id) ON DELETE CASCADE,
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	comment_text TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	is_read BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE INDEX IF NOT EXISTS comments_post_idx ON comments (post_id, created_at);

CREATE TABLE IF NOT EXISTS user_likes (
	user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	post_id BIGINT NOT NULL REFERENCES blog_posts(id) ON DELETE CASCADE,
	post_name TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (user_id, post_id)
);
`
