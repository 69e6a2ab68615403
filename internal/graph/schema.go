package graph

// Schema is the GraphQL surface of the platform. The web frontend
// consumes it over HTTP for queries/mutations and over a graphql-ws
// websocket for subscriptions.
const Schema = `
schema {
	query: Query
	mutation: Mutation
	subscription: Subscription
}

type Query {
	findSessionsByUser: [Session!]!
	findCurrentSession: Session!

	me: User!
	findUserByID(id: String!): User
	getAllUsers: [User!]!
	searchUsers(query: String!, limit: Int, offset: Int): [User!]!

	getUserPosts(id: String!): [Post!]!
	getMyPosts: [Post!]!
	getRandomPosts(limit: Int): [Post!]!
	searchPosts(query: String!, limit: Int, offset: Int): [Post!]!
}

type Mutation {
	login(data: LoginInput!): AuthResult!
	logout: Boolean!
	removeSession(id: String!): Boolean!
	clearSessionCookie: Boolean!

	createUser(data: CreateUserInput!): User!
	updateProfile(bio: String, avatar: String): User!

	createPost(data: CreatePostInput!): Post!
	updatePost(id: String!, data: UpdatePostInput!): Post!
	deletePost(id: String!): Boolean!

	createComment(postId: String!, text: String!): Comment!
	updateComment(id: String!, text: String!): Comment!
	deleteComment(id: String!): Comment!
	likePost(postId: String!): Like!
}

type Subscription {
	likeAdded(postId: String!): Like!
	commentAdded(postId: String!): Comment!
	commentUpdated(postId: String!): Comment!
	commentDeleted(postId: String!): Comment!
}

type Session {
	id: String!
	userId: String!
	createdAt: String!
}

type AuthResult {
	success: Boolean!
	message: String!
	user: User!
	session: Session!
}

type User {
	id: String!
	userName: String!
	email: String!
	firstName: String!
	lastName: String!
	avatar: String
	bio: String
	createdAt: String!
	updatedAt: String!
}

type Post {
	id: String!
	userId: String!
	title: String!
	text: String!
	photos: [String!]!
	videos: [String!]!
	comments: [Comment!]!
	likes: [Like!]!
	user: User
	createdAt: String!
	updatedAt: String!
}

type Comment {
	id: String!
	postId: String!
	userId: String!
	text: String!
	user: User
	createdAt: String!
	updatedAt: String!
}

type Like {
	id: String!
	postId: String!
	userId: String!
	createdAt: String!
}

input LoginInput {
	login: String!
	password: String!
}

input CreateUserInput {
	userName: String!
	email: String!
	password: String!
	firstName: String!
	lastName: String!
}

input CreatePostInput {
	title: String!
	text: String
	photos: [String!]
	videos: [String!]
}

input UpdatePostInput {
	title: String
	text: String
	photos: [String!]
	videos: [String!]
}
`
